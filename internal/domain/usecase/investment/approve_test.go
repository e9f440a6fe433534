package investment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	persistencemocks "github.com/multinvest/platform/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKeyTest struct{}

func TestApproveInvestment(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(context.Background(), txKeyTest{}, "tx")

	pendingInvestment := func() *entity.Investment {
		firmID := uint64(2)
		return &entity.Investment{
			ID:            3,
			UserID:        7,
			FirmID:        &firmID,
			TransactionID: "TX-1001",
			AmountInCents: 25000,
			Status:        entity.StatusPending,
			CreatedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Successful approval credits the owner once", func(t *testing.T) {
		m := newInvestmentMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetInvestmentRepository(txCtx).Return(m.investmentRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()

		m.investmentRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(3)).Return(pendingInvestment(), nil).Once()
		m.investmentRepo.EXPECT().MarkCompleted(txCtx, uint64(3)).Return(nil).Once()
		txUsers.EXPECT().AddToBalance(txCtx, uint64(7), int64(25000)).Return(nil).Once()

		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		m.notifier.EXPECT().InvestmentApproved(mock.Anything, uint64(7), uint64(3), "250.00").Once()

		err := m.service().Approve(ctx, 3)

		require.NoError(t, err)
	})

	t.Run("Already completed rolls back without touching the balance", func(t *testing.T) {
		m := newInvestmentMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)

		completed := pendingInvestment()
		completed.Status = entity.StatusCompleted

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetInvestmentRepository(txCtx).Return(m.investmentRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.investmentRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(3)).Return(completed, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	})

	t.Run("Unknown investment rolls back", func(t *testing.T) {
		m := newInvestmentMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetInvestmentRepository(txCtx).Return(m.investmentRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.investmentRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(99)).Return(nil, errs.ErrInvestmentNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrInvestmentNotFound)
	})

	t.Run("Credit failure rolls back the status flip", func(t *testing.T) {
		m := newInvestmentMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)

		databaseError := errors.New("database update error")

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetInvestmentRepository(txCtx).Return(m.investmentRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.investmentRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(3)).Return(pendingInvestment(), nil).Once()
		m.investmentRepo.EXPECT().MarkCompleted(txCtx, uint64(3)).Return(nil).Once()
		txUsers.EXPECT().AddToBalance(txCtx, uint64(7), int64(25000)).Return(databaseError).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 3)

		assert.Error(t, err)
		assert.ErrorIs(t, err, databaseError)

		var appErr *errs.ApprovalError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "investment", appErr.Kind)
	})

	t.Run("Begin failure", func(t *testing.T) {
		m := newInvestmentMocks(t)

		beginErr := errors.New("connection lost")
		m.uow.EXPECT().Begin(mock.Anything).Return(nil, beginErr).Once()

		err := m.service().Approve(ctx, 3)

		assert.Equal(t, beginErr, err)
	})
}
