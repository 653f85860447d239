package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/routes"
	"github.com/daybook-app/backend/internal/services"
)

// memSessionStore is an in-memory SessionStore so handler tests don't
// need a running Redis.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]uuid.UUID
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]uuid.UUID{}}
}

func (s *memSessionStore) Put(_ context.Context, token string, userID uuid.UUID, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
	return nil
}

func (s *memSessionStore) Lookup(_ context.Context, token string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[token]
	return userID, ok, nil
}

func (s *memSessionStore) Drop(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memSessionStore) DropUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, id := range s.sessions {
		if id == userID {
			delete(s.sessions, token)
		}
	}
	return nil
}

// newTestApp wires the router against a sqlmock database and an
// in-memory session store.
func newTestApp(t *testing.T) (*chi.Mux, sqlmock.Sqlmock, *memSessionStore) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	database.PostgresDB = db

	store := newMemSessionStore()
	services.SetSessionStore(store)

	r := chi.NewRouter()
	routes.SetupRoutes(r)
	return r, mock, store
}

// postForm performs a form POST against the router.
func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// loginAs creates a session for the given user and returns its cookie.
func loginAs(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := services.CreateSession(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: "daybook_session", Value: token}
}
