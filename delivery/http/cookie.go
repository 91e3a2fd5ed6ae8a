package http

import (
	"net/http"
	"time"
)

const sessionCookieName = "token"

// createSessionCookie scopes the session credential to the browser. Outside
// production the cross-site policy is relaxed so a local frontend on another
// port can send it.
func createSessionCookie(token, env string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if env == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

func createClearSessionCookie(env string) *http.Cookie {
	cookie := createSessionCookie("", env, 0)
	cookie.MaxAge = -1
	return cookie
}
