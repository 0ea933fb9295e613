package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/crafternoon/internal/catalog"
	"github.com/focusnest/crafternoon/internal/hunt"
	"github.com/focusnest/crafternoon/internal/progress"
	"github.com/focusnest/crafternoon/internal/shared/dto"
	"github.com/focusnest/crafternoon/internal/shared/logging"
	"github.com/focusnest/crafternoon/internal/shared/server"
	"github.com/focusnest/crafternoon/internal/view"
)

type testApp struct {
	router http.Handler
	repo   progress.Repository
	cookie *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	repo := progress.NewMemoryRepository()
	store, err := progress.NewStore(repo, logging.Discard())
	require.NoError(t, err)
	renderer, err := view.NewRenderer("test")
	require.NoError(t, err)

	sessions := hunt.NewSessions(store, logging.Discard(), 0)
	router := server.NewRouter(dto.HealthResponse{Service: "hunt-service", Version: "test"}, func(r chi.Router) {
		RegisterRoutes(r, sessions, renderer, Options{AllowedOrigins: []string{"*"}, Logger: logging.Discard()})
	})
	return &testApp{router: router, repo: repo}
}

func (a *testApp) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == ContextCookie {
			a.cookie = c
		}
	}
	return rec
}

func (a *testApp) progress(t *testing.T) progressResponse {
	t.Helper()
	rec := a.do(t, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp progressResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestFirstVisitMintsContextCookie(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, app.cookie)
	_, err := uuid.Parse(app.cookie.Value)
	assert.NoError(t, err)
	assert.True(t, app.cookie.HttpOnly)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `class="hunt-section active" id="hunt-craft"`)
	assert.Contains(t, body, "0 of 5 found")
	assert.NotContains(t, body, "completion-message show")
}

func TestMalformedCookieIsReplaced(t *testing.T) {
	app := newTestApp(t)
	app.cookie = &http.Cookie{Name: ContextCookie, Value: "not-a-uuid"}
	app.do(t, http.MethodGet, "/", nil)

	_, err := uuid.Parse(app.cookie.Value)
	assert.NoError(t, err)
}

func TestToggleFormRedirectsAndPersists(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodGet, "/", nil)

	rec := app.do(t, http.MethodPost, "/challenges/craft-messy/toggle", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	raw, err := app.repo.Get(context.Background(), progress.ScopedKey(app.cookie.Value))
	require.NoError(t, err)
	assert.JSONEq(t, `{"craft-messy": true}`, raw)

	page := app.do(t, http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, page, "1 of 5 found")
}

func TestToggleUnknownChallenge(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/challenges/craft-glue/toggle", url.Values{}).Code)

	rec := app.do(t, http.MethodPost, "/api/challenges/craft-glue/toggle", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestSelectTabDoesNotMutateProgress(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/challenges/library-place/toggle", url.Values{})

	rec := app.do(t, http.MethodPost, "/tabs/library", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	resp := app.progress(t)
	assert.Equal(t, catalog.Library, resp.Active)
	assert.Equal(t, []string{"library-place"}, resp.Completed)

	assert.Contains(t, app.do(t, http.MethodGet, "/", nil).Body.String(), `class="hunt-section active" id="hunt-library"`)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/tabs/museum", url.Values{}).Code)
}

func TestAPIToggleTwice(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/challenges/craft-messy/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get(HapticHeader))

	var resp progressResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Locations[catalog.Craft].Completed)

	app.do(t, http.MethodPost, "/api/challenges/craft-messy/toggle", nil)
	assert.Equal(t, 0, app.progress(t).Locations[catalog.Craft].Completed)
}

func TestResetRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	for _, c := range catalog.Challenges(catalog.Craft) {
		app.do(t, http.MethodPost, "/challenges/"+c.ID+"/toggle", url.Values{})
	}
	app.do(t, http.MethodPost, "/challenges/library-hobby/toggle", url.Values{})

	craft := app.progress(t).Locations[catalog.Craft]
	assert.True(t, craft.Complete)
	assert.Equal(t, 100.0, craft.Percent)
	assert.Contains(t, app.do(t, http.MethodGet, "/", nil).Body.String(), "completion-message show")

	rec := app.do(t, http.MethodPost, "/locations/craft/reset", url.Values{"confirmed": {"false"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 5, app.progress(t).Locations[catalog.Craft].Completed)

	app.do(t, http.MethodPost, "/locations/craft/reset", url.Values{"confirmed": {"true"}})
	resp := app.progress(t)
	assert.Equal(t, 0, resp.Locations[catalog.Craft].Completed)
	assert.Equal(t, 1, resp.Locations[catalog.Library].Completed)
}

func TestAPIReset(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/api/challenges/library-words/toggle", nil)

	rec := app.do(t, http.MethodPost, "/api/locations/library/reset", nil)
	var declined resetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&declined))
	assert.False(t, declined.Reset)
	assert.Equal(t, 1, declined.Progress.Locations[catalog.Library].Completed)

	rec = app.do(t, http.MethodPost, "/api/locations/library/reset?confirm=true", nil)
	var applied resetResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&applied))
	assert.True(t, applied.Reset)
	assert.Equal(t, 0, applied.Progress.Locations[catalog.Library].Completed)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPost, "/api/locations/museum/reset?confirm=true", nil).Code)
}

func TestContextsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/api/challenges/craft-friends/toggle", nil)

	other := &testApp{router: app.router}
	assert.Empty(t, other.progress(t).Completed)
	assert.Equal(t, []string{"craft-friends"}, app.progress(t).Completed)
}

func TestCatalogAndStatic(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Hunts []catalog.Hunt `json:"hunts"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Hunts, 2)
	assert.Len(t, body.Hunts[1].Challenges, 5)

	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/static/app.css", nil).Code)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/healthz", nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/progress", nil)
	req.Header.Set("Origin", "https://hunt.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, "https://hunt.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIErrorsUseEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var missing errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&missing))
	assert.Equal(t, "not_found", missing.Code)

	rec = app.do(t, http.MethodGet, "/api/challenges/craft-messy/toggle", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	var wrongMethod errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&wrongMethod))
	assert.Equal(t, "method_not_allowed", wrongMethod.Code)
}

func TestToggleKeepsWritesFromOtherClients(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodGet, "/", nil)
	require.NotNil(t, app.cookie)

	ctx := context.Background()
	key := progress.ScopedKey(app.cookie.Value)
	require.NoError(t, app.repo.Set(ctx, key, `{"library-place":true}`))

	app.do(t, http.MethodPost, "/api/challenges/craft-messy/toggle", nil)

	stored, err := app.repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"craft-messy":true,"library-place":true}`, stored)
}
