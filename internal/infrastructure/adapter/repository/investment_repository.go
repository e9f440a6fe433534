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

// InvestmentRepository implements persistence.InvestmentRepository using GORM
type InvestmentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	queries         *QueryRunner
	errorClassifier *ErrorClassifier
}

// NewInvestmentRepository creates a new InvestmentRepository instance
func NewInvestmentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queries *QueryRunner) *InvestmentRepository {
	return &InvestmentRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		queries:         queries,
		errorClassifier: NewErrorClassifier(),
	}
}

func investmentModelToEntity(m *model.Investment) entity.Investment {
	return entity.Investment{
		ID:            m.ID,
		UserID:        m.UserID,
		FirmID:        m.FirmID,
		TransactionID: m.TransactionID,
		AmountInCents: m.Amount,
		Status:        entity.Status(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *InvestmentRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"investment_id": id,
		"error":         err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrInvestmentNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return errs.ErrRowLocked
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new pending investment and fills in its generated ID
func (r *InvestmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.Investment{
		UserID:        investment.UserID,
		FirmID:        investment.FirmID,
		TransactionID: investment.TransactionID,
		Amount:        investment.AmountInCents,
		Status:        string(investment.Status),
		CreatedAt:     investment.CreatedAt,
	}

	err := r.queries.Write(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(&investmentModel).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating investment", err, 0)
	}

	investment.ID = investmentModel.ID

	r.logger.Info("Investment created", map[string]any{
		"investment_id": investment.ID,
		"user_id":       investment.UserID,
		"amount":        investment.GetAmount(),
	})
	return nil
}

// GetByIDForUpdate retrieves an investment by ID holding an exclusive row lock.
// Must run inside a unit-of-work transaction, so there is no retry.
func (r *InvestmentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Investment, error) {
	var investmentModel model.Investment
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&investmentModel, id).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("locking investment", err, id)
	}

	investment := investmentModelToEntity(&investmentModel)
	return &investment, nil
}

// MarkCompleted flips a pending investment to completed. The status guard in
// the WHERE clause makes the transition happen at most once.
func (r *InvestmentRepository) MarkCompleted(ctx context.Context, id uint64) error {
	var result *gorm.DB
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		result = r.db.WithContext(ctx).Model(&model.Investment{}).
			Where("id = ? AND status = ?", id, string(entity.StatusPending)).
			Update("status", string(entity.StatusCompleted))
		return result.Error
	})
	if err != nil {
		return r.handleDatabaseError("completing investment", err, id)
	}
	if result.RowsAffected == 0 {
		var count int64
		err := r.queries.Write(ctx, func(ctx context.Context) error {
			return r.db.WithContext(ctx).Model(&model.Investment{}).Where("id = ?", id).Count(&count).Error
		})
		if err != nil {
			return r.handleDatabaseError("checking investment existence", err, id)
		}
		if count == 0 {
			return errs.ErrInvestmentNotFound
		}
		return errs.ErrAlreadyCompleted
	}

	r.logger.Info("Investment completed", map[string]any{
		"investment_id": id,
	})
	return nil
}

// ListByUser returns the user's investments joined with firm names, newest first
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uint64) ([]persistence.InvestmentRecord, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("investments.user_id = ?", userID)
	})
}

// ListAll returns every investment joined with firm and owner, newest first
func (r *InvestmentRepository) ListAll(ctx context.Context) ([]persistence.InvestmentRecord, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *InvestmentRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]persistence.InvestmentRecord, error) {
	type row struct {
		model.Investment
		FirmName *string
		Username string
		Email    string
	}

	var rows []row
	err := r.queries.Read(ctx, "list investments", func(ctx context.Context) error {
		query := r.db.WithContext(ctx).Model(&model.Investment{}).
			Select("investments.*, firms.name AS firm_name, users.username AS username, users.email AS email").
			Joins("LEFT JOIN firms ON firms.id = investments.firm_id").
			Joins("JOIN users ON users.id = investments.user_id").
			Order("investments.created_at DESC, investments.id DESC")
		rows = rows[:0]
		return scope(query).Scan(&rows).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing investments", err, 0)
	}

	records := make([]persistence.InvestmentRecord, 0, len(rows))
	for i := range rows {
		record := persistence.InvestmentRecord{
			Investment: investmentModelToEntity(&rows[i].Investment),
			Username:   rows[i].Username,
			Email:      rows[i].Email,
		}
		if rows[i].FirmName != nil {
			record.FirmName = *rows[i].FirmName
		}
		records = append(records, record)
	}
	return records, nil
}
