package repository

import (
	"context"

	"envelope/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager. Unless
// an expectation says otherwise, Execute runs fn against Factory.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// NewMockTransactionManager creates a manager whose transactions use factory
func NewMockTransactionManager(factory repository.RepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{Factory: factory}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if len(m.ExpectedCalls) > 0 {
		args := m.Called(ctx, fn)

		return args.Error(0)
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out fixed repositories
type MockRepositoryFactory struct {
	NoteRepo repository.NoteRepository
}

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

func (f *MockRepositoryFactory) NewNoteRepository() repository.NoteRepository {
	return f.NoteRepo
}
