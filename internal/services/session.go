package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/daybook-app/backend/internal/database"
	"github.com/google/uuid"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix is the Redis key prefix for user->session mapping
	UserSessionKeyPrefix = "user_session:"
)

// SessionStore persists session tokens. The default implementation is
// Redis-backed; tests may substitute an in-memory store.
type SessionStore interface {
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (uuid.UUID, bool, error)
	Drop(ctx context.Context, token string) error
	DropUser(ctx context.Context, userID uuid.UUID) error
}

var sessionStore SessionStore = redisSessionStore{}

// SetSessionStore swaps the session backend. Intended for tests.
func SetSessionStore(s SessionStore) {
	sessionStore = s
}

// CreateSession creates a new session for a user.
// If the user already has a session, it invalidates the old one first so
// the 7-day timer resets from the current login.
// Returns the session token.
func CreateSession(userID uuid.UUID) (string, error) {
	ctx := context.Background()

	// Invalidate any existing session for this user
	_ = sessionStore.DropUser(ctx, userID)

	// Generate secure session token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	sessionToken := base64.URLEncoding.EncodeToString(tokenBytes)

	if err := sessionStore.Put(ctx, sessionToken, userID, SessionDuration); err != nil {
		return "", err
	}

	return sessionToken, nil
}

// ValidateSession checks if a session token is valid and returns the user ID
func ValidateSession(sessionToken string) (uuid.UUID, bool, error) {
	if sessionToken == "" {
		return uuid.Nil, false, nil
	}
	return sessionStore.Lookup(context.Background(), sessionToken)
}

// InvalidateSession removes a session
func InvalidateSession(sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return sessionStore.Drop(context.Background(), sessionToken)
}

// redisSessionStore stores sessions in Redis with expiry, plus a
// user->session mapping so a new login replaces the previous session.
type redisSessionStore struct{}

func (redisSessionStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	sessionKey := SessionKeyPrefix + token
	userSessionKey := UserSessionKeyPrefix + userID.String()

	if err := database.RedisClient.Set(ctx, sessionKey, userID.String(), ttl).Err(); err != nil {
		return err
	}
	return database.RedisClient.Set(ctx, userSessionKey, token, ttl).Err()
}

func (redisSessionStore) Lookup(ctx context.Context, token string) (uuid.UUID, bool, error) {
	userIDStr, err := database.RedisClient.Get(ctx, SessionKeyPrefix+token).Result()
	if err != nil {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}

	return userID, true, nil
}

func (redisSessionStore) Drop(ctx context.Context, token string) error {
	sessionKey := SessionKeyPrefix + token

	// Get user ID before deleting so the mapping goes too
	userIDStr, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err == nil && userIDStr != "" {
		database.RedisClient.Del(ctx, UserSessionKeyPrefix+userIDStr)
	}

	return database.RedisClient.Del(ctx, sessionKey).Err()
}

func (redisSessionStore) DropUser(ctx context.Context, userID uuid.UUID) error {
	userSessionKey := UserSessionKeyPrefix + userID.String()

	// Delete the current session token, if any
	sessionToken, err := database.RedisClient.Get(ctx, userSessionKey).Result()
	if err == nil && sessionToken != "" {
		database.RedisClient.Del(ctx, SessionKeyPrefix+sessionToken)
	}

	return database.RedisClient.Del(ctx, userSessionKey).Err()
}
