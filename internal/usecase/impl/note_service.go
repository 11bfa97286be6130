package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/entity"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/repository"
	"envelope/internal/domain/service"
	"envelope/internal/errors"
	"envelope/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publisherServiceName = "event-publisher"

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NoteRepo  repository.NoteRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type noteService struct {
	txManager repository.TransactionManager
	noteRepo  repository.NoteRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewNoteService creates a new note service instance
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		txManager: params.TxManager,
		noteRepo:  params.NoteRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// CreateNote stores a new note for ownerID
func (s *noteService) CreateNote(ctx context.Context, ownerID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	now := s.now().UTC()
	note := &entity.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     input.Title,
		Body:      input.Body,
		Tags:      normalizeTags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.noteRepo.CreateNote(ctx, note); err != nil {
		return nil, mapRepoError(err, "create note")
	}

	return note, nil
}

// GetNote returns a note owned by ownerID
func (s *noteService) GetNote(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error) {
	return s.findOwned(ctx, s.noteRepo, ownerID, noteID)
}

// ListNotes returns the owner's notes at offset, at most limit of them
func (s *noteService) ListNotes(ctx context.Context, ownerID uuid.UUID, offset, limit int) (*usecase.NotePage, error) {
	notes, total, err := s.noteRepo.ListNotesByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, mapRepoError(err, "list notes")
	}

	if notes == nil {
		notes = []*entity.Note{}
	}

	return &usecase.NotePage{Notes: notes, Total: total}, nil
}

// UpdateNote replaces the writable fields of a note owned by ownerID
func (s *noteService) UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	var updated *entity.Note

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewNoteRepository()

		note, err := s.findOwned(ctx, repo, ownerID, noteID)
		if err != nil {
			return err
		}

		note.Title = input.Title
		note.Body = input.Body
		note.Tags = normalizeTags(input.Tags)
		note.UpdatedAt = s.now().UTC()

		if err := repo.UpdateNote(ctx, note); err != nil {
			return mapRepoError(err, "update note")
		}

		updated = note

		return nil
	})
	if err != nil {
		return nil, mapRepoError(err, "update note")
	}

	return updated, nil
}

// DeleteNote removes a note owned by ownerID
func (s *noteService) DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	if _, err := s.findOwned(ctx, s.noteRepo, ownerID, noteID); err != nil {
		return err
	}

	if err := s.noteRepo.DeleteNote(ctx, noteID); err != nil {
		return mapRepoError(err, "delete note")
	}

	return nil
}

// PublishNote hands the note to the event queue and marks it published
func (s *noteService) PublishNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	note, err := s.findOwned(ctx, s.noteRepo, ownerID, noteID)
	if err != nil {
		return err
	}

	event := &service.NoteEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		NoteID:    note.ID.String(),
		OwnerID:   note.OwnerID.String(),
		Title:     note.Title,
		Tags:      note.Tags,
	}

	if err := s.publisher.PublishNoteEvent(ctx, event); err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Error("Failed to publish note event",
			slog.String("note_id", event.NoteID),
			slog.Any("error", err),
		)

		if _, ok := errors.Find[domainerrors.AppError](err); ok {
			return err
		}

		return domainerrors.NewThirdPartyError(err, publisherServiceName)
	}

	if note.Published {
		return nil
	}

	note.Published = true
	note.UpdatedAt = s.now().UTC()
	if err := s.noteRepo.UpdateNote(ctx, note); err != nil {
		return mapRepoError(err, "mark note published")
	}

	return nil
}

// Stats aggregates counts over all notes
func (s *noteService) Stats(ctx context.Context) (*entity.NoteStats, error) {
	stats, err := s.noteRepo.Stats(ctx)
	if err != nil {
		return nil, mapRepoError(err, "note stats")
	}

	return stats, nil
}

func (s *noteService) findOwned(ctx context.Context, repo repository.NoteRepository, ownerID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := repo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, mapRepoError(err, "find note")
	}

	// Other owners' notes are reported as forbidden, not hidden
	if !note.OwnedBy(ownerID) {
		return nil, domainerrors.ErrAccessDenied.WithDetails("note belongs to another user")
	}

	return note, nil
}

// mapRepoError turns persistence failures into application errors
func mapRepoError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrNoteNotFound):
		return domainerrors.ErrResourceNotFound.WithMessage("Note not found")
	case errors.Is(err, repository.ErrDuplicateNote):
		return domainerrors.ErrDuplicateResource.WithMessage("A note with this title already exists")
	}

	if _, ok := errors.Find[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
