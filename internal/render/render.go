package render

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/daybook-app/backend/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LoginData is the view data for the login page.
type LoginData struct {
	ErrorMessage string
}

// ProfileData is the view data for a user's profile page.
type ProfileData struct {
	UserID   string
	Username string
	Journals []models.JournalEntry
}

// ErrorData is the view data for the generic error page.
type ErrorData struct {
	Message string
	Error   string
}

// Page renders the named template with the given status and data.
func Page(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("Failed to render template")
	}
}
