// Package repository holds testify mocks of the persistence interfaces.
package repository

import (
	"context"

	"envelope/internal/domain/entity"
	"envelope/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNoteRepository is a mock of repository.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

var _ repository.NoteRepository = (*MockNoteRepository)(nil)

// NewMockNoteRepository creates a mock that asserts its expectations on cleanup
func NewMockNoteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNoteRepository {
	m := &MockNoteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNoteRepository_Expecter records expectations by method name
type MockNoteRepository_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of m
func (m *MockNoteRepository) EXPECT() *MockNoteRepository_Expecter {
	return &MockNoteRepository_Expecter{mock: &m.Mock}
}

func (m *MockNoteRepository) CreateNote(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)

	return args.Error(0)
}

func (e *MockNoteRepository_Expecter) CreateNote(ctx, note any) *mock.Call {
	return e.mock.On("CreateNote", ctx, note)
}

func (m *MockNoteRepository) FindNoteByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	args := m.Called(ctx, id)
	note, _ := args.Get(0).(*entity.Note)

	return note, args.Error(1)
}

func (e *MockNoteRepository_Expecter) FindNoteByID(ctx, id any) *mock.Call {
	return e.mock.On("FindNoteByID", ctx, id)
}

func (m *MockNoteRepository) ListNotesByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Note, int64, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	notes, _ := args.Get(0).([]*entity.Note)
	total, _ := args.Get(1).(int64)

	return notes, total, args.Error(2)
}

func (e *MockNoteRepository_Expecter) ListNotesByOwner(ctx, ownerID, offset, limit any) *mock.Call {
	return e.mock.On("ListNotesByOwner", ctx, ownerID, offset, limit)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)

	return args.Error(0)
}

func (e *MockNoteRepository_Expecter) UpdateNote(ctx, note any) *mock.Call {
	return e.mock.On("UpdateNote", ctx, note)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (e *MockNoteRepository_Expecter) DeleteNote(ctx, id any) *mock.Call {
	return e.mock.On("DeleteNote", ctx, id)
}

func (m *MockNoteRepository) Stats(ctx context.Context) (*entity.NoteStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*entity.NoteStats)

	return stats, args.Error(1)
}

func (e *MockNoteRepository_Expecter) Stats(ctx any) *mock.Call {
	return e.mock.On("Stats", ctx)
}
