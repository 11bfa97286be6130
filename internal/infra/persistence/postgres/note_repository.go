// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"envelope/internal/domain/entity"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/repository"
	"envelope/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the repository.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// CreateNote persists a new note.
func (repo *noteRepository) CreateNote(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		return translateWriteError(err, "failed to create note")
	}

	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindNoteByID retrieves a note by its unique ID.
func (repo *noteRepository) FindNoteByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find note by ID")
	}

	return toNoteDomain(&noteM), nil
}

// ListNotesByOwner returns one window of an owner's notes, newest first, and the owner's total.
func (repo *noteRepository) ListNotesByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Note, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notes")
	}

	notes := make([]*entity.Note, 0, limit)
	if total == 0 || int64(offset) >= total {
		return notes, total, nil
	}

	var noteModels []*model.NoteModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&noteModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list notes")
	}

	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, total, nil
}

// UpdateNote saves title, body, tags and published state.
func (repo *noteRepository) UpdateNote(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", note.ID).
		Select("title", "body", "tags", "published", "updated_at").
		Updates(noteM)

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes a note by its ID (soft delete).
func (repo *noteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NoteModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Stats aggregates counts over all notes.
func (repo *noteRepository) Stats(ctx context.Context) (*entity.NoteStats, error) {
	var stats entity.NoteStats

	if err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE published) AS published, COUNT(DISTINCT owner_id) AS owners").
		Scan(&stats).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate notes")
	}

	return &stats, nil
}

func fromNoteDomain(note *entity.Note) *model.NoteModel {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.NoteModel{
		ID:        note.ID,
		OwnerID:   note.OwnerID,
		Title:     note.Title,
		Body:      note.Body,
		Tags:      tags,
		Published: note.Published,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteDomain(noteM *model.NoteModel) *entity.Note {
	tags := noteM.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Note{
		ID:        noteM.ID,
		OwnerID:   noteM.OwnerID,
		Title:     noteM.Title,
		Body:      noteM.Body,
		Tags:      tags,
		Published: noteM.Published,
		CreatedAt: noteM.CreatedAt,
		UpdatedAt: noteM.UpdatedAt,
	}
}
