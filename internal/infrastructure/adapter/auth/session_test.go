package auth

import (
	"testing"
	"time"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	coremocks "github.com/multinvest/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	user := &entity.User{ID: 11, IsAdmin: false}
	admin := &entity.User{ID: 1, IsAdmin: true}

	newManager := func(t *testing.T, now time.Time) *SessionManager {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Maybe()
		return NewSessionManager("test-secret-for-sessions", time.Hour, mockTime)
	}

	t.Run("Issue and parse round trip", func(t *testing.T) {
		manager := newManager(t, time.Now())

		token, err := manager.Issue(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(11), claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Admin flag survives the round trip", func(t *testing.T) {
		manager := newManager(t, time.Now())

		token, err := manager.Issue(admin)
		require.NoError(t, err)

		claims, err := manager.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		manager := newManager(t, time.Now())

		token, err := manager.Issue(user)
		require.NoError(t, err)

		mockTime := coremocks.NewMockTimeProvider(t)
		other := NewSessionManager("a-different-secret", time.Hour, mockTime)

		claims, err := other.Parse(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		// Issued two hours in the past with a one hour TTL
		manager := newManager(t, time.Now().Add(-2*time.Hour))

		token, err := manager.Issue(user)
		require.NoError(t, err)

		claims, err := manager.Parse(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		manager := newManager(t, time.Now())

		claims, err := manager.Parse("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, claims)
	})

	t.Run("TTL is exposed for cookie lifetimes", func(t *testing.T) {
		manager := newManager(t, fixedTime)
		assert.Equal(t, time.Hour, manager.TTL())
	})
}
