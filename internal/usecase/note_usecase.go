package usecase

import (
	"context"

	"envelope/internal/domain/entity"

	"github.com/google/uuid"
)

// NoteInput carries the writable fields of a note
type NoteInput struct {
	Title string   `json:"title" validate:"required,min=1,max=120"`
	Body  string   `json:"body" validate:"max=10000"`
	Tags  []string `json:"tags" validate:"max=10,dive,min=1,max=32"`
}

// NotePage is one window of an owner's notes
type NotePage struct {
	Notes []*entity.Note
	Total int64
}

// NoteUsecase defines the interface for note management use cases.
// Every failure is an application error carrying its business code.
type NoteUsecase interface {
	// CreateNote stores a new note for ownerID
	CreateNote(ctx context.Context, ownerID uuid.UUID, input *NoteInput) (*entity.Note, error)

	// GetNote returns a note owned by ownerID
	GetNote(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error)

	// ListNotes returns the owner's notes at offset, at most limit of them
	ListNotes(ctx context.Context, ownerID uuid.UUID, offset, limit int) (*NotePage, error)

	// UpdateNote replaces the writable fields of a note owned by ownerID
	UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, input *NoteInput) (*entity.Note, error)

	// DeleteNote removes a note owned by ownerID
	DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error

	// PublishNote hands the note to the event queue and marks it published
	PublishNote(ctx context.Context, ownerID, noteID uuid.UUID) error

	// Stats aggregates counts over all notes
	Stats(ctx context.Context) (*entity.NoteStats, error)
}
