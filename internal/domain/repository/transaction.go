package repository

import "context"

// TransactionManager lets a use case group several repository calls into one
// atomic unit without knowing the storage driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories that share the caller's transaction.
type RepositoryFactory interface {
	NewNoteRepository() NoteRepository
}
