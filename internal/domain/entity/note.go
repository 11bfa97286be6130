package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a short text owned by a single user. Titles are unique per owner.
type Note struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the note.
func (n *Note) OwnedBy(userID uuid.UUID) bool {
	return n.OwnerID == userID
}

// NoteStats summarises the stored notes.
type NoteStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Owners    int64 `json:"owners"`
}
