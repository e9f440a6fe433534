package entity

import (
	"testing"
	"time"

	errs "github.com/multinvest/platform/internal/domain/error"
	coremocks "github.com/multinvest/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithdrawal(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation starts pending", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		wd, err := NewWithdrawal(7, "0xabc123", "75.50", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), wd.UserID)
		assert.Equal(t, "0xabc123", wd.WalletAddress)
		assert.Equal(t, int64(7550), wd.AmountInCents)
		assert.Equal(t, "75.50", wd.GetAmount())
		assert.Equal(t, StatusPending, wd.Status)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			description   string
			userID        uint64
			walletAddress string
			amount        string
			errorType     error
		}{
			{"Missing user", 0, "0xabc", "10.00", errs.ErrUserNotFound},
			{"Missing wallet address", 7, "", "10.00", errs.ErrValidation},
			{"Zero amount", 7, "0xabc", "0", errs.ErrInvalidAmount},
			{"Negative amount", 7, "0xabc", "-1.00", errs.ErrNegativeAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				mockTime := coremocks.NewMockTimeProvider(t)

				wd, err := NewWithdrawal(tc.userID, tc.walletAddress, tc.amount, mockTime)

				assert.ErrorIs(t, err, tc.errorType)
				assert.Nil(t, wd)
			})
		}
	})
}

func TestWithdrawalComplete(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pending completes exactly once", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		wd, err := NewWithdrawal(7, "0xabc123", "75.50", mockTime)
		require.NoError(t, err)

		require.NoError(t, wd.Complete())
		assert.Equal(t, StatusCompleted, wd.Status)

		assert.ErrorIs(t, wd.Complete(), errs.ErrAlreadyCompleted)
	})
}
