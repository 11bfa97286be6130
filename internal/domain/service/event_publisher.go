package service

import (
	"context"
)

// NoteEvent is emitted when a note is published for downstream consumers
type NoteEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	NoteID    string   `json:"note_id"`
	OwnerID   string   `json:"owner_id"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNoteEvent hands the event to the queue. Failures are
	// THIRD_PARTY_ERROR or EXTERNAL_API_ERROR application errors.
	PublishNoteEvent(ctx context.Context, event *NoteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
