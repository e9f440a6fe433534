package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/domain/port/persistence"
	"github.com/multinvest/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithdrawalRepository implements persistence.WithdrawalRepository using GORM
type WithdrawalRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	queries         *QueryRunner
	errorClassifier *ErrorClassifier
}

// NewWithdrawalRepository creates a new WithdrawalRepository instance
func NewWithdrawalRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queries *QueryRunner) *WithdrawalRepository {
	return &WithdrawalRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		queries:         queries,
		errorClassifier: NewErrorClassifier(),
	}
}

func withdrawalModelToEntity(m *model.Withdrawal) entity.Withdrawal {
	return entity.Withdrawal{
		ID:            m.ID,
		UserID:        m.UserID,
		WalletAddress: m.WalletAddress,
		AmountInCents: m.Amount,
		Status:        entity.Status(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *WithdrawalRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"withdrawal_id": id,
		"error":         err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrWithdrawalNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return errs.ErrRowLocked
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new pending withdrawal and fills in its generated ID
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entity.Withdrawal) error {
	withdrawalModel := model.Withdrawal{
		UserID:        withdrawal.UserID,
		WalletAddress: withdrawal.WalletAddress,
		Amount:        withdrawal.AmountInCents,
		Status:        string(withdrawal.Status),
		CreatedAt:     withdrawal.CreatedAt,
	}

	err := r.queries.Write(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(&withdrawalModel).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating withdrawal", err, 0)
	}

	withdrawal.ID = withdrawalModel.ID

	r.logger.Info("Withdrawal created", map[string]any{
		"withdrawal_id": withdrawal.ID,
		"user_id":       withdrawal.UserID,
		"amount":        withdrawal.GetAmount(),
	})
	return nil
}

// GetByIDForUpdate retrieves a withdrawal by ID holding an exclusive row lock.
// Must run inside a unit-of-work transaction, so there is no retry.
func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Withdrawal, error) {
	var withdrawalModel model.Withdrawal
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&withdrawalModel, id).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("locking withdrawal", err, id)
	}

	withdrawal := withdrawalModelToEntity(&withdrawalModel)
	return &withdrawal, nil
}

// MarkCompleted flips a pending withdrawal to completed. Funds moved at
// submission time, so this is purely a status transition.
func (r *WithdrawalRepository) MarkCompleted(ctx context.Context, id uint64) error {
	var result *gorm.DB
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		result = r.db.WithContext(ctx).Model(&model.Withdrawal{}).
			Where("id = ? AND status = ?", id, string(entity.StatusPending)).
			Update("status", string(entity.StatusCompleted))
		return result.Error
	})
	if err != nil {
		return r.handleDatabaseError("completing withdrawal", err, id)
	}
	if result.RowsAffected == 0 {
		var count int64
		err := r.queries.Write(ctx, func(ctx context.Context) error {
			return r.db.WithContext(ctx).Model(&model.Withdrawal{}).Where("id = ?", id).Count(&count).Error
		})
		if err != nil {
			return r.handleDatabaseError("checking withdrawal existence", err, id)
		}
		if count == 0 {
			return errs.ErrWithdrawalNotFound
		}
		return errs.ErrAlreadyCompleted
	}

	r.logger.Info("Withdrawal completed", map[string]any{
		"withdrawal_id": id,
	})
	return nil
}

// ListByUser returns the user's withdrawals, newest first
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Withdrawal, error) {
	var withdrawalModels []model.Withdrawal
	err := r.queries.Read(ctx, "list withdrawals", func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("id DESC").
			Find(&withdrawalModels).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing withdrawals", err, 0)
	}

	withdrawals := make([]entity.Withdrawal, 0, len(withdrawalModels))
	for i := range withdrawalModels {
		withdrawals = append(withdrawals, withdrawalModelToEntity(&withdrawalModels[i]))
	}
	return withdrawals, nil
}

// ListAll returns every withdrawal joined with its owner, newest first
func (r *WithdrawalRepository) ListAll(ctx context.Context) ([]persistence.WithdrawalRecord, error) {
	type row struct {
		model.Withdrawal
		Username string
		Email    string
	}

	var rows []row
	err := r.queries.Read(ctx, "list all withdrawals", func(ctx context.Context) error {
		rows = rows[:0]
		return r.db.WithContext(ctx).Model(&model.Withdrawal{}).
			Select("withdrawals.*, users.username AS username, users.email AS email").
			Joins("JOIN users ON users.id = withdrawals.user_id").
			Order("withdrawals.id DESC").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing withdrawals", err, 0)
	}

	records := make([]persistence.WithdrawalRecord, 0, len(rows))
	for i := range rows {
		records = append(records, persistence.WithdrawalRecord{
			Withdrawal: withdrawalModelToEntity(&rows[i].Withdrawal),
			Username:   rows[i].Username,
			Email:      rows[i].Email,
		})
	}
	return records, nil
}
