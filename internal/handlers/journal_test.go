package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var profileColumns = []string{"username", "id", "date", "exercise", "outdoors", "entry", "rating"}

func TestProfileRequiresSession(t *testing.T) {
	r, _, _ := newTestApp(t)

	rec := get(r, "/profile/"+uuid.NewString())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestProfileOtherUserIsNotFound(t *testing.T) {
	r, _, _ := newTestApp(t)

	cookie := loginAs(t, uuid.New())
	rec := get(r, "/profile/"+uuid.NewString(), cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileUnknownUserIsNotFound(t *testing.T) {
	r, mock, _ := newTestApp(t)

	userID := uuid.New()
	mock.ExpectQuery("SELECT users.username").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	cookie := loginAs(t, userID)
	rec := get(r, "/profile/"+userID.String(), cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page does not exist")
}

func TestProfileWithNoEntries(t *testing.T) {
	r, mock, _ := newTestApp(t)

	userID := uuid.New()
	// Left join with no entries yields one null-filled row
	mock.ExpectQuery("SELECT users.username").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("alice", nil, nil, nil, nil, nil, nil))

	cookie := loginAs(t, userID)
	rec := get(r, "/profile/"+userID.String(), cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), "No entries yet")
}

func TestProfileRendersEntries(t *testing.T) {
	r, mock, _ := newTestApp(t)

	userID := uuid.New()
	date := time.Date(2019, 1, 9, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT users.username").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("alice", uuid.NewString(), date, true, false, "Had a wonderful time on the lake.", 7))

	cookie := loginAs(t, userID)
	rec := get(r, "/profile/"+userID.String(), cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Had a wonderful time on the lake.")
	assert.Contains(t, rec.Body.String(), "Jan 9, 2019")
	assert.Contains(t, rec.Body.String(), "rating 7/10")
	assert.Contains(t, rec.Body.String(), "exercised")
	assert.NotContains(t, rec.Body.String(), "outdoors)")
}

func TestNewEntryRequiresSession(t *testing.T) {
	r, _, _ := newTestApp(t)

	rec := postForm(r, "/new", url.Values{
		"date":  {"2019-01-09"},
		"entry": {"some text"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestNewEntryCheckboxPresenceSemantics(t *testing.T) {
	r, mock, _ := newTestApp(t)

	userID := uuid.New()
	date := time.Date(2019, 1, 9, 0, 0, 0, 0, time.UTC)

	// exercise present (any value) => true; outdoors absent => false
	mock.ExpectExec("INSERT INTO journals").
		WithArgs(userID, date, true, false, "ran by the river", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cookie := loginAs(t, userID)
	rec := postForm(r, "/new", url.Values{
		"uid":      {uuid.NewString()}, // ignored; session identity wins
		"date":     {"2019-01-09"},
		"exercise": {"on"},
		"entry":    {"ran by the river"},
	}, cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile/"+userID.String(), rec.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewEntryRejectsBadDate(t *testing.T) {
	r, mock, _ := newTestApp(t)

	cookie := loginAs(t, uuid.New())
	rec := postForm(r, "/new", url.Values{
		"date":  {"not-a-date"},
		"entry": {"some text"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeAndLoginPages(t *testing.T) {
	r, _, _ := newTestApp(t)

	rec := get(r, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Daybook")

	rec = get(r, "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
	assert.Contains(t, rec.Body.String(), `action="/create"`)
}

func TestNotFoundFallback(t *testing.T) {
	r, _, _ := newTestApp(t)

	rec := get(r, "/no/such/page")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page does not exist")
	assert.Contains(t, rec.Body.String(), "Not all those who wander are lost")
}
