package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/canvass-dashboard/userctx"
)

// Session keys
const (
	SessionUsername      = "username"
	SessionDisplayName   = "display_name"
	SessionRedirectAfter = "redirect_after_login"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		username, _ := sess.Get(SessionUsername).(string)

		if username == "" {
			// Only pages are worth returning to
			if r.Method == http.MethodGet {
				sess.Set(SessionRedirectAfter, r.URL.RequestURI())
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := userctx.SetUsername(r.Context(), username)
		if name, ok := sess.Get(SessionDisplayName).(string); ok {
			ctx = userctx.SetDisplayName(ctx, name)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
