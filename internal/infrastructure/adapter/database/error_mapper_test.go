package database

import (
	"errors"
	"testing"

	domainErr "github.com/multinvest/platform/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "commit transaction"))
	})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: domainErr.ErrNotFound,
		},
		{
			name: "deadlock",
			err:  errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"),
			want: domainErr.ErrRowLocked,
		},
		{
			name: "serialization failure",
			err:  errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"),
			want: domainErr.ErrRowLocked,
		},
		{
			name: "duplicate email",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			want: domainErr.ErrDuplicateEmail,
		},
		{
			name: "other duplicate key",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_firms_name" (SQLSTATE 23505)`),
			want: domainErr.ErrConstraintViolation,
		},
		{
			name: "foreign key violation",
			err:  errors.New(`ERROR: insert or update on table "investments" violates foreign key constraint "fk_users_investments" (SQLSTATE 23503)`),
			want: domainErr.ErrConstraintViolation,
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			want: domainErr.ErrDatabaseConnection,
		},
		{
			name: "unknown error",
			err:  errors.New("something unexpected"),
			want: domainErr.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "begin transaction"), tt.want)
		})
	}

	t.Run("deadline exceeded wraps the operation name", func(t *testing.T) {
		err := mapper.MapError(errors.New("context deadline exceeded"), "commit transaction")
		assert.ErrorIs(t, err, domainErr.ErrDatabaseConnection)
		assert.Contains(t, err.Error(), "commit transaction")
	})
}
