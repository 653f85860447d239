package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/models"
	"github.com/daybook-app/backend/internal/services"
	"github.com/daybook-app/backend/pkg/utils"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation. The users.username constraint is the authoritative
// already-exists signal, so registration never races a pre-check.
const uniqueViolation = "23505"

// Register creates a new account from the login page's create form and
// signs the user in. Form fields: username, password.
func Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderLogin(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		renderLogin(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := utils.ValidateUsername(username); err != nil {
		renderLogin(w, http.StatusBadRequest, err.Error())
		return
	}
	username = utils.NormalizeUsername(username)

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		serverError(w, err)
		return
	}

	var userID uuid.UUID
	err = database.PostgresDB.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, hashedPassword).Scan(&userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			renderLogin(w, http.StatusConflict, "Username already exists")
			return
		}
		serverError(w, err)
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		serverError(w, err)
		return
	}
	setSessionCookie(w, token)

	logrus.WithField("user_id", userID).Info("User registered")
	http.Redirect(w, r, "/profile/"+userID.String(), http.StatusSeeOther)
}

// Login authenticates a user from the login form and redirects to their
// profile. Form fields: username, password.
func Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderLogin(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	username := utils.NormalizeUsername(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	var user models.User
	err := database.PostgresDB.QueryRow(`
		SELECT id, password_hash FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			renderLogin(w, http.StatusUnauthorized, "Username does not exist")
			return
		}
		serverError(w, err)
		return
	}

	valid, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !valid {
		renderLogin(w, http.StatusUnauthorized, "Password incorrect")
		return
	}

	token, err := services.CreateSession(user.ID)
	if err != nil {
		serverError(w, err)
		return
	}
	setSessionCookie(w, token)

	http.Redirect(w, r, "/profile/"+user.ID.String(), http.StatusSeeOther)
}
