package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/daybook-app/backend/internal/render"
	"github.com/daybook-app/backend/internal/services"
)

// Home renders the landing page
func Home(w http.ResponseWriter, r *http.Request) {
	render.Page(w, http.StatusOK, "index.html", nil)
}

// LoginPage renders the login form
func LoginPage(w http.ResponseWriter, r *http.Request) {
	render.Page(w, http.StatusOK, "login.html", render.LoginData{})
}

// Logout invalidates the session (if any) and redirects to the login page
func Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := services.InvalidateSession(cookie.Value); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate session")
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// NotFound is the catch-all for unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Page(w, http.StatusNotFound, "error.html", render.ErrorData{
		Message: "This page does not exist",
		Error:   "Not all those who wander are lost",
	})
}

// serverError logs a storage or internal failure and terminates the
// request with the generic error page.
func serverError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("Server error")
	render.Page(w, http.StatusInternalServerError, "error.html", render.ErrorData{
		Message: "Server Error",
		Error:   "Something went wrong on our side. Please try again.",
	})
}

func renderLogin(w http.ResponseWriter, status int, errorMessage string) {
	render.Page(w, status, "login.html", render.LoginData{ErrorMessage: errorMessage})
}
