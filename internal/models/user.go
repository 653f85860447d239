package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password_hash" json:"-"` // Argon2id hash, never returned
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
