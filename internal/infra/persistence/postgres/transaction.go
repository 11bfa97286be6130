package postgres

import (
	"context"

	"envelope/internal/domain/repository"
	"envelope/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs use case steps against one GORM transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back when it fails or
// panics. Errors from fn are returned unchanged so callers can map them.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "note transaction")
	}

	return err
}

// txRepositories hands out repositories bound to tx.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewNoteRepository() repository.NoteRepository {
	return NewNoteRepository(r.tx)
}
