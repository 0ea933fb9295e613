package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ContextCookie names the cookie that identifies a browser context.
const ContextCookie = "hunt_ctx"

const contextCookieMaxAge = 365 * 24 * time.Hour

type ctxKey string

const browserCtxKey ctxKey = "crafternoon:browser-context"

// BrowserContext assigns every browser a stable opaque id, minting one when the
// cookie is missing or malformed.
func BrowserContext(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(ContextCookie); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ContextCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(contextCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), browserCtxKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BrowserContextID extracts the id installed by BrowserContext.
func BrowserContextID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(browserCtxKey).(string)
	return id, ok && id != ""
}
