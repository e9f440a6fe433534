package entity

import (
	"testing"
	"time"

	errs "github.com/multinvest/platform/internal/domain/error"
	coremocks "github.com/multinvest/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", "alice@example.com", "hashed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.GetBalance())
		assert.False(t, user.IsAdmin)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", "alice@example.com", "hashed", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("alice", "not-an-email", "hashed", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		assert.Nil(t, user)
	})

	t.Run("Empty password hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("alice", "alice@example.com", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})
}

func TestUserBalance(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newUser := func(t *testing.T, balance int64) (*User, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		user, err := NewUser("bob", "bob@example.com", "hashed", mockTime)
		require.NoError(t, err)
		user.SetBalance(balance, mockTime)
		return user, mockTime
	}

	t.Run("Credit adds to balance", func(t *testing.T) {
		user, mockTime := newUser(t, 1000)

		user.Credit(550, mockTime)

		assert.Equal(t, int64(1550), user.Balance())
		assert.Equal(t, "15.50", user.GetBalance())
	})

	t.Run("Debit with sufficient balance", func(t *testing.T) {
		user, mockTime := newUser(t, 1000)

		err := user.Debit(1000, mockTime)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Debit exceeding balance fails and leaves balance untouched", func(t *testing.T) {
		user, mockTime := newUser(t, 999)

		err := user.Debit(1000, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(999), user.Balance())
	})

	t.Run("CanDebit", func(t *testing.T) {
		user, _ := newUser(t, 500)

		assert.True(t, user.CanDebit(500))
		assert.True(t, user.CanDebit(1))
		assert.False(t, user.CanDebit(501))
	})
}
