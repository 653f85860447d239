package handlers

import (
	"net/http"
	"time"

	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/render"
	"github.com/daybook-app/backend/internal/services"
)

// NewEntry creates a journal entry for the logged-in user and redirects
// to their profile. Form fields: uid, date, exercise, outdoors, entry.
// The exercise/outdoors checkboxes are presence-based: present means
// true, absent means false, whatever the submitted value.
func NewEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		render.Page(w, http.StatusBadRequest, "error.html", render.ErrorData{
			Message: "Invalid form submission",
			Error:   "The entry could not be read.",
		})
		return
	}

	// From session only; the form uid is ignored
	date, err := time.Parse("2006-01-02", r.PostFormValue("date"))
	if err != nil {
		render.Page(w, http.StatusBadRequest, "error.html", render.ErrorData{
			Message: "Invalid date",
			Error:   "Dates must look like 2019-01-09.",
		})
		return
	}

	_, exercise := r.PostForm["exercise"]
	_, outdoors := r.PostForm["outdoors"]
	entry := r.PostFormValue("entry")

	rating := services.EntryRating(entry)

	_, err = database.PostgresDB.Exec(`
		INSERT INTO journals (uid, date, exercise, outdoors, entry, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uid, date, exercise, outdoors, entry, rating)
	if err != nil {
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/profile/"+uid.String(), http.StatusSeeOther)
}
