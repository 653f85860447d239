package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/models"
	"github.com/daybook-app/backend/internal/render"
)

// Profile renders a user's journal page. Requires a valid session owned
// by the requested user; a nonexistent user is an explicit 404.
func Profile(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "uid"))
	if err != nil {
		NotFound(w, r)
		return
	}

	sessionUser, ok := currentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if sessionUser != uid {
		// Profiles are private; don't reveal whether the user exists
		NotFound(w, r)
		return
	}

	rows, err := database.PostgresDB.Query(`
		SELECT users.username, journals.id, journals.date, journals.exercise,
			journals.outdoors, journals.entry, journals.rating
		FROM users
		LEFT JOIN journals ON users.id = journals.uid
		WHERE users.id = $1
		ORDER BY journals.date DESC
	`, uid)
	if err != nil {
		serverError(w, err)
		return
	}
	defer rows.Close()

	var username string
	var journals []models.JournalEntry
	found := false
	for rows.Next() {
		var entryID uuid.NullUUID
		var date sql.NullTime
		var exercise, outdoors sql.NullBool
		var entry sql.NullString
		var rating sql.NullInt64
		if err := rows.Scan(&username, &entryID, &date, &exercise, &outdoors, &entry, &rating); err != nil {
			serverError(w, err)
			return
		}
		found = true
		// A NULL journal id means the left join matched no entries
		if !entryID.Valid {
			continue
		}
		journals = append(journals, models.JournalEntry{
			ID:       entryID.UUID,
			UserID:   uid,
			Date:     date.Time,
			Exercise: exercise.Bool,
			Outdoors: outdoors.Bool,
			Entry:    entry.String,
			Rating:   int(rating.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		serverError(w, err)
		return
	}

	if !found {
		NotFound(w, r)
		return
	}

	render.Page(w, http.StatusOK, "profile.html", render.ProfileData{
		UserID:   uid.String(),
		Username: username,
		Journals: journals,
	})
}
