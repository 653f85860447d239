package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/daybook-app/backend/internal/services"
)

// SessionCookieName carries the server-issued session token.
const SessionCookieName = "daybook_session"

// currentUser validates the session cookie and returns the authenticated
// user's ID. Returns (uuid.Nil, false) if not authenticated.
func currentUser(r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(cookie.Value)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
