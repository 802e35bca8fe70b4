package common

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookieName = "sid"

// sessions live long enough to span saved searches between visits.
const sessionMaxAge = 30 * 24 * time.Hour

func setSessionCookie(w http.ResponseWriter, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionId,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   int(sessionMaxAge.Seconds()),
	})
}

// HandleSessionCookie returns the request's session id, minting and
// setting a fresh one when the cookie is absent or empty. The id scopes
// redis-backed saved filters and tracking events to a visitor.
func HandleSessionCookie(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		return c.Value
	}
	sessionId := uuid.NewString()
	setSessionCookie(w, sessionId)
	return sessionId
}
