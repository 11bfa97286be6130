package postgres

import (
	"testing"

	"envelope/internal/domain/code"
	"envelope/internal/domain/entity"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePgError struct{ code string }

func (e *fakePgError) Error() string    { return "pg error " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantCode  code.StatusCode
		checkCode bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, wantIs: repository.ErrDuplicateNote},
		{name: "raw unique violation", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_notes_owner_title" (SQLSTATE 23505)`), wantIs: repository.ErrDuplicateNote},
		{name: "not null", err: errors.New(`ERROR: null value in column "title" violates not-null constraint (SQLSTATE 23502)`), wantCode: code.ValidationError, checkCode: true},
		{name: "check", err: gorm.ErrCheckConstraintViolated, wantCode: code.ValidationError, checkCode: true},
		{name: "driver error", err: errors.Wrap(&fakePgError{code: "23505"}, "insert"), wantIs: repository.ErrDuplicateNote},
		{name: "driver error other state", err: &fakePgError{code: "40001"}, wantCode: code.DatabaseError, checkCode: true},
		{name: "anything else", err: errors.New("connection reset by peer"), wantCode: code.DatabaseError, checkCode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err, "failed to create note")
			require.Error(t, got)

			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}

			if tt.checkCode {
				var appErr domainerrors.AppError
				require.True(t, errors.As(got, &appErr))
				assert.Equal(t, tt.wantCode, appErr.Code())
			}
		})
	}
}

func TestNoteModelMapping(t *testing.T) {
	in := &entity.Note{ID: uuid.New(), OwnerID: uuid.New(), Title: "t", Published: true}

	out := toNoteDomain(fromNoteDomain(in))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.OwnerID, out.OwnerID)
	assert.True(t, out.Published)
	assert.Equal(t, []string{}, out.Tags, "nil tags are stored as an empty list")
}
