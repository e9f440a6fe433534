package withdrawal

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

func TestApproveWithdrawal(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(context.Background(), txKeyTest{}, "tx")

	pendingWithdrawal := func() *entity.Withdrawal {
		return &entity.Withdrawal{
			ID:            5,
			UserID:        7,
			WalletAddress: "0xabc123",
			AmountInCents: 7550,
			Status:        entity.StatusPending,
			CreatedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Successful approval is a pure status change", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()

		txWithdrawals.EXPECT().GetByIDForUpdate(txCtx, uint64(5)).Return(pendingWithdrawal(), nil).Once()
		txWithdrawals.EXPECT().MarkCompleted(txCtx, uint64(5)).Return(nil).Once()

		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// The owner was debited at submission; no balance call is expected here,
		// which the user repository mock enforces by having no expectations.
		err := m.service().Approve(ctx, 5)

		require.NoError(t, err)
	})

	t.Run("Already completed rolls back", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		completed := pendingWithdrawal()
		completed.Status = entity.StatusCompleted

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()
		txWithdrawals.EXPECT().GetByIDForUpdate(txCtx, uint64(5)).Return(completed, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 5)

		assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	})

	t.Run("Unknown withdrawal rolls back", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()
		txWithdrawals.EXPECT().GetByIDForUpdate(txCtx, uint64(99)).Return(nil, errs.ErrWithdrawalNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)
	})

	t.Run("MarkCompleted failure rolls back", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		databaseError := errors.New("database update error")

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()
		txWithdrawals.EXPECT().GetByIDForUpdate(txCtx, uint64(5)).Return(pendingWithdrawal(), nil).Once()
		txWithdrawals.EXPECT().MarkCompleted(txCtx, uint64(5)).Return(databaseError).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := m.service().Approve(ctx, 5)

		assert.Error(t, err)
		assert.ErrorIs(t, err, databaseError)

		var appErr *errs.ApprovalError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "withdrawal", appErr.Kind)
	})
}
