package withdrawal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	"github.com/multinvest/platform/internal/domain/port/usecase"
	coremocks "github.com/multinvest/platform/mocks/port/core"
	persistencemocks "github.com/multinvest/platform/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type withdrawalMocks struct {
	userRepo       *persistencemocks.MockUserRepository
	withdrawalRepo *persistencemocks.MockWithdrawalRepository
	uow            *persistencemocks.MockUnitOfWork
	notifier       *coremocks.MockNotifier
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
}

func newWithdrawalMocks(t *testing.T) *withdrawalMocks {
	return &withdrawalMocks{
		userRepo:       persistencemocks.NewMockUserRepository(t),
		withdrawalRepo: persistencemocks.NewMockWithdrawalRepository(t),
		uow:            persistencemocks.NewMockUnitOfWork(t),
		notifier:       coremocks.NewMockNotifier(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}
}

func (m *withdrawalMocks) service() usecase.WithdrawalUseCase {
	return NewService(m.userRepo, m.withdrawalRepo, m.uow, m.notifier, m.timeProvider, m.logger)
}

type txKeyTest struct{}

func TestSubmitWithdrawal(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(context.Background(), txKeyTest{}, "tx")
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	validReq := usecase.SubmitWithdrawalRequest{
		UserID:        7,
		WalletAddress: "0xabc123",
		Amount:        "75.50",
	}

	t.Run("Successful submission debits immediately", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()

		txUsers.EXPECT().DebitIfSufficient(txCtx, uint64(7), int64(7550)).Return(nil).Once()
		txWithdrawals.EXPECT().Create(txCtx, mock.MatchedBy(func(wd *entity.Withdrawal) bool {
			return wd.UserID == 7 &&
				wd.WalletAddress == "0xabc123" &&
				wd.AmountInCents == 7550 &&
				wd.Status == entity.StatusPending
		})).Run(func(ctx context.Context, wd *entity.Withdrawal) {
			wd.ID = 5
		}).Return(nil).Once()

		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		m.notifier.EXPECT().WithdrawalRequested(mock.Anything, uint64(7), uint64(5), "75.50").Once()

		wd, err := m.service().Submit(ctx, validReq)

		require.NoError(t, err)
		assert.Equal(t, uint64(5), wd.ID)
		assert.Equal(t, entity.StatusPending, wd.Status)
	})

	t.Run("Insufficient balance rolls back and reports the current balance", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)

		m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(m.withdrawalRepo).Once()

		txUsers.EXPECT().DebitIfSufficient(txCtx, uint64(7), int64(7550)).Return(errs.ErrInsufficientBalance).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		balanceUser, err := entity.NewUser("bob", "bob@example.com", "hashed", m.timeProvider)
		require.NoError(t, err)
		balanceUser.SetBalance(1000, m.timeProvider)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(balanceUser, nil).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		wd, err := m.service().Submit(ctx, validReq)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, wd)

		var ibErr *errs.InsufficientBalanceError
		require.True(t, errors.As(err, &ibErr))
		assert.Equal(t, "75.50", ibErr.Amount)
		assert.Equal(t, "10.00", ibErr.CurrBalance)
	})

	t.Run("Validation failures never open a transaction", func(t *testing.T) {
		testCases := []struct {
			description string
			req         usecase.SubmitWithdrawalRequest
			errorType   error
		}{
			{"Missing wallet", usecase.SubmitWithdrawalRequest{UserID: 7, Amount: "10.00"}, errs.ErrValidation},
			{"Zero amount", usecase.SubmitWithdrawalRequest{UserID: 7, WalletAddress: "0xabc", Amount: "0"}, errs.ErrInvalidAmount},
			{"Negative amount", usecase.SubmitWithdrawalRequest{UserID: 7, WalletAddress: "0xabc", Amount: "-5"}, errs.ErrNegativeAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				m := newWithdrawalMocks(t)

				wd, err := m.service().Submit(ctx, tc.req)

				assert.ErrorIs(t, err, tc.errorType)
				assert.Nil(t, wd)
			})
		}
	})

	t.Run("Create failure rolls back the debit", func(t *testing.T) {
		m := newWithdrawalMocks(t)
		txUsers := persistencemocks.NewMockUserRepository(t)
		txWithdrawals := persistencemocks.NewMockWithdrawalRepository(t)

		databaseError := errors.New("database insert error")

		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txUsers).Once()
		m.uow.EXPECT().GetWithdrawalRepository(txCtx).Return(txWithdrawals).Once()

		txUsers.EXPECT().DebitIfSufficient(txCtx, uint64(7), int64(7550)).Return(nil).Once()
		txWithdrawals.EXPECT().Create(txCtx, mock.Anything).Return(databaseError).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		wd, err := m.service().Submit(ctx, validReq)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, wd)
	})

	t.Run("Begin failure", func(t *testing.T) {
		m := newWithdrawalMocks(t)

		beginErr := errors.New("connection lost")
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(nil, beginErr).Once()

		wd, err := m.service().Submit(ctx, validReq)

		assert.Equal(t, beginErr, err)
		assert.Nil(t, wd)
	})
}
