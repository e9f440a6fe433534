package investment

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

type investmentMocks struct {
	firmRepo       *persistencemocks.MockFirmRepository
	investmentRepo *persistencemocks.MockInvestmentRepository
	withdrawalRepo *persistencemocks.MockWithdrawalRepository
	uow            *persistencemocks.MockUnitOfWork
	notifier       *coremocks.MockNotifier
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
}

func newInvestmentMocks(t *testing.T) *investmentMocks {
	return &investmentMocks{
		firmRepo:       persistencemocks.NewMockFirmRepository(t),
		investmentRepo: persistencemocks.NewMockInvestmentRepository(t),
		withdrawalRepo: persistencemocks.NewMockWithdrawalRepository(t),
		uow:            persistencemocks.NewMockUnitOfWork(t),
		notifier:       coremocks.NewMockNotifier(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}
}

func (m *investmentMocks) service() usecase.InvestmentUseCase {
	return NewService(m.firmRepo, m.investmentRepo, m.withdrawalRepo, m.uow, m.notifier, m.timeProvider, m.logger)
}

func TestSubmitInvestment(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	validReq := usecase.SubmitInvestmentRequest{
		UserID:        7,
		FirmID:        "2",
		TransactionID: "TX-1001",
		Amount:        "250.00",
	}

	t.Run("Successful submission stays pending", func(t *testing.T) {
		m := newInvestmentMocks(t)

		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.firmRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.Firm{ID: 2, Name: "Acme Estates"}, nil).Once()
		m.investmentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(inv *entity.Investment) bool {
			return inv.UserID == 7 &&
				inv.AmountInCents == 25000 &&
				inv.Status == entity.StatusPending
		})).Run(func(ctx context.Context, inv *entity.Investment) {
			inv.ID = 3
		}).Return(nil).Once()
		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		inv, err := m.service().Submit(ctx, validReq)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), inv.ID)
		assert.Equal(t, entity.StatusPending, inv.Status)
	})

	t.Run("Missing form fields", func(t *testing.T) {
		reqs := []usecase.SubmitInvestmentRequest{
			{UserID: 7, TransactionID: "TX-1", Amount: "10.00"},
			{UserID: 7, FirmID: "2", Amount: "10.00"},
			{UserID: 7, FirmID: "2", TransactionID: "TX-1"},
		}

		for _, req := range reqs {
			m := newInvestmentMocks(t)

			inv, err := m.service().Submit(ctx, req)

			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, inv)
		}
	})

	t.Run("Non-numeric firm ID", func(t *testing.T) {
		m := newInvestmentMocks(t)

		req := validReq
		req.FirmID = "acme"
		inv, err := m.service().Submit(ctx, req)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, inv)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		m := newInvestmentMocks(t)

		req := validReq
		req.Amount = "-10.00"
		inv, err := m.service().Submit(ctx, req)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, inv)
	})

	t.Run("Unknown firm", func(t *testing.T) {
		m := newInvestmentMocks(t)

		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.firmRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(nil, errs.ErrFirmNotFound).Once()

		inv, err := m.service().Submit(ctx, validReq)

		assert.ErrorIs(t, err, errs.ErrFirmNotFound)
		assert.Nil(t, inv)
	})

	t.Run("Repository failure", func(t *testing.T) {
		m := newInvestmentMocks(t)

		databaseError := errors.New("database insert error")
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.firmRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.Firm{ID: 2}, nil).Once()
		m.investmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(databaseError).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		inv, err := m.service().Submit(ctx, validReq)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, inv)
	})
}

func TestListFirms(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns seeded firms", func(t *testing.T) {
		m := newInvestmentMocks(t)

		firms := []*entity.Firm{
			{ID: 1, Name: "Acme Estates"},
			{ID: 2, Name: "BlueSky Realty"},
		}
		m.firmRepo.EXPECT().List(mock.Anything).Return(firms, nil).Once()

		got, err := m.service().ListFirms(ctx)

		require.NoError(t, err)
		assert.Equal(t, firms, got)
	})
}
