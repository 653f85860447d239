package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry represents one dated journal entry belonging to a user.
// Rating is a placeholder mood score in [0,10] until a real mood
// integration replaces the stub.
type JournalEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"uid" json:"uid"`
	Date      time.Time `db:"date" json:"date"`
	Exercise  bool      `db:"exercise" json:"exercise"`
	Outdoors  bool      `db:"outdoors" json:"outdoors"`
	Entry     string    `db:"entry" json:"entry"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
