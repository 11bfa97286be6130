// Package usecase holds testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"envelope/internal/domain/entity"
	"envelope/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNoteUsecase is a mock of usecase.NoteUsecase
type MockNoteUsecase struct {
	mock.Mock
}

var _ usecase.NoteUsecase = (*MockNoteUsecase)(nil)

// NewMockNoteUsecase creates a mock that asserts its expectations on cleanup
func NewMockNoteUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNoteUsecase {
	m := &MockNoteUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNoteUsecase_Expecter records expectations by method name
type MockNoteUsecase_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter of m
func (m *MockNoteUsecase) EXPECT() *MockNoteUsecase_Expecter {
	return &MockNoteUsecase_Expecter{mock: &m.Mock}
}

func (m *MockNoteUsecase) CreateNote(ctx context.Context, ownerID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	args := m.Called(ctx, ownerID, input)
	note, _ := args.Get(0).(*entity.Note)

	return note, args.Error(1)
}

func (e *MockNoteUsecase_Expecter) CreateNote(ctx, ownerID, input any) *mock.Call {
	return e.mock.On("CreateNote", ctx, ownerID, input)
}

func (m *MockNoteUsecase) GetNote(ctx context.Context, ownerID, noteID uuid.UUID) (*entity.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	note, _ := args.Get(0).(*entity.Note)

	return note, args.Error(1)
}

func (e *MockNoteUsecase_Expecter) GetNote(ctx, ownerID, noteID any) *mock.Call {
	return e.mock.On("GetNote", ctx, ownerID, noteID)
}

func (m *MockNoteUsecase) ListNotes(ctx context.Context, ownerID uuid.UUID, offset, limit int) (*usecase.NotePage, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	page, _ := args.Get(0).(*usecase.NotePage)

	return page, args.Error(1)
}

func (e *MockNoteUsecase_Expecter) ListNotes(ctx, ownerID, offset, limit any) *mock.Call {
	return e.mock.On("ListNotes", ctx, ownerID, offset, limit)
}

func (m *MockNoteUsecase) UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	args := m.Called(ctx, ownerID, noteID, input)
	note, _ := args.Get(0).(*entity.Note)

	return note, args.Error(1)
}

func (e *MockNoteUsecase_Expecter) UpdateNote(ctx, ownerID, noteID, input any) *mock.Call {
	return e.mock.On("UpdateNote", ctx, ownerID, noteID, input)
}

func (m *MockNoteUsecase) DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	args := m.Called(ctx, ownerID, noteID)

	return args.Error(0)
}

func (e *MockNoteUsecase_Expecter) DeleteNote(ctx, ownerID, noteID any) *mock.Call {
	return e.mock.On("DeleteNote", ctx, ownerID, noteID)
}

func (m *MockNoteUsecase) PublishNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	args := m.Called(ctx, ownerID, noteID)

	return args.Error(0)
}

func (e *MockNoteUsecase_Expecter) PublishNote(ctx, ownerID, noteID any) *mock.Call {
	return e.mock.On("PublishNote", ctx, ownerID, noteID)
}

func (m *MockNoteUsecase) Stats(ctx context.Context) (*entity.NoteStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*entity.NoteStats)

	return stats, args.Error(1)
}

func (e *MockNoteUsecase_Expecter) Stats(ctx any) *mock.Call {
	return e.mock.On("Stats", ctx)
}
