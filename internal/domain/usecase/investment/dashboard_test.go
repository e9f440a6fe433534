package investment

import (
	"context"
	"errors"
	"testing"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed investments drive the totals", func(t *testing.T) {
		m := newInvestmentMocks(t)

		investments := []persistence.InvestmentRecord{
			{Investment: entity.Investment{ID: 3, UserID: 7, AmountInCents: 25000, Status: entity.StatusCompleted}, FirmName: "Acme Estates"},
			{Investment: entity.Investment{ID: 2, UserID: 7, AmountInCents: 5000, Status: entity.StatusPending}, FirmName: "BlueSky Realty"},
			{Investment: entity.Investment{ID: 1, UserID: 7, AmountInCents: 15000, Status: entity.StatusCompleted}, FirmName: "Acme Estates"},
		}
		withdrawals := []entity.Withdrawal{
			{ID: 1, UserID: 7, AmountInCents: 1000, Status: entity.StatusPending},
		}

		m.investmentRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(investments, nil).Once()
		m.withdrawalRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(withdrawals, nil).Once()

		data, err := m.service().Dashboard(ctx, 7)

		require.NoError(t, err)
		assert.Len(t, data.Investments, 3)
		assert.Len(t, data.Withdrawals, 1)
		// Pending amounts are excluded from the completed total
		assert.Equal(t, "400.00", data.CompletedTotal)
		assert.Equal(t, "420.00", data.ProjectedReturn)
	})

	t.Run("No completed investments", func(t *testing.T) {
		m := newInvestmentMocks(t)

		m.investmentRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(nil, nil).Once()
		m.withdrawalRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(nil, nil).Once()

		data, err := m.service().Dashboard(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "0.00", data.CompletedTotal)
		assert.Equal(t, "0.00", data.ProjectedReturn)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		m := newInvestmentMocks(t)

		data, err := m.service().Dashboard(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, data)
	})

	t.Run("Investment listing failure", func(t *testing.T) {
		m := newInvestmentMocks(t)

		databaseError := errors.New("database query error")
		m.investmentRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(nil, databaseError).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		data, err := m.service().Dashboard(ctx, 7)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, data)
	})

	t.Run("Withdrawal listing failure", func(t *testing.T) {
		m := newInvestmentMocks(t)

		databaseError := errors.New("database query error")
		m.investmentRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(nil, nil).Once()
		m.withdrawalRepo.EXPECT().ListByUser(mock.Anything, uint64(7)).Return(nil, databaseError).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		data, err := m.service().Dashboard(ctx, 7)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, data)
	})
}
