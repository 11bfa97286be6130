// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"envelope/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for note persistence.
var (
	// ErrNoteNotFound is returned when a note is not found.
	ErrNoteNotFound = errors.New("note not found")
	// ErrDuplicateNote is returned when the owner already has a note with the same title.
	ErrDuplicateNote = errors.New("note already exists")
)

// NoteRepository defines the interface for note-related database operations.
type NoteRepository interface {
	// CreateNote persists a new note and fills in its generated fields.
	CreateNote(ctx context.Context, note *entity.Note) error

	// FindNoteByID retrieves a note by its unique ID.
	FindNoteByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// ListNotesByOwner returns one window of an owner's notes, newest first, and the owner's total.
	ListNotesByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Note, int64, error)

	// UpdateNote saves title, body, tags and published state.
	UpdateNote(ctx context.Context, note *entity.Note) error

	// DeleteNote removes a note by its ID (soft delete).
	DeleteNote(ctx context.Context, id uuid.UUID) error

	// Stats aggregates counts over all notes.
	Stats(ctx context.Context) (*entity.NoteStats, error)
}
