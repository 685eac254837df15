package middleware

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// AuthCookie carries the superuser token between requests.
const AuthCookie = "pb_auth"

// RequireAdmin gates the back-office. The session must resolve to a
// superuser AND match the single allow-listed admin email; any other
// identity is signed out on the spot so a stale cookie cannot linger.
func RequireAdmin(app *pocketbase.PocketBase, adminEmail string) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(AuthCookie)
		if err != nil || cookie.Value == "" {
			return e.Redirect(http.StatusSeeOther, "/login")
		}
		record, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
		if err != nil || record == nil || !record.IsSuperuser() {
			return signOut(e)
		}
		if adminEmail != "" && !strings.EqualFold(record.Email(), adminEmail) {
			return signOut(e)
		}
		e.Auth = record
		return e.Next()
	}
}

func signOut(e *core.RequestEvent) error {
	ClearAuthCookie(e)
	return e.Redirect(http.StatusSeeOther, "/login")
}

// SetAuthCookie stores a fresh session token.
func SetAuthCookie(e *core.RequestEvent, token string, maxAge int) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie expires the session token.
func ClearAuthCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
