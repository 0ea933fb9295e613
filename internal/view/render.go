package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"

	"github.com/focusnest/crafternoon/internal/hunt"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. assetVer busts static asset caches.
func NewRenderer(assetVer string) (*Renderer, error) {
	funcMap := template.FuncMap{
		"assetVer": func() string { return assetVer },
		"width": func(pct float64) template.CSS {
			return template.CSS("width: " + strconv.FormatFloat(pct, 'f', 0, 64) + "%")
		},
	}

	tmpl, err := template.New("page").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for s. An unmounted state writes nothing.
func (r *Renderer) Render(w io.Writer, s hunt.State) error {
	page, ok := Build(s)
	if !ok {
		return nil
	}
	return r.tmpl.ExecuteTemplate(w, "layout", page)
}

// Static is the embedded stylesheet and script tree, rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return sub
}
