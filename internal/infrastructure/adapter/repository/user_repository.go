package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/multinvest/platform/internal/domain/entity"
	errs "github.com/multinvest/platform/internal/domain/error"
	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	queries         *QueryRunner
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queries *QueryRunner) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		queries:         queries,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		IsAdmin:      userModel.IsAdmin,
	}
	user.SetBalance(userModel.Balance, r.timeProvider)
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrRowLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	err := r.queries.Read(ctx, "get user", func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&userModel, id).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	err := r.queries.Read(ctx, "get user by email", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by email", err, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user and fills in its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Balance:      user.Balance(),
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	err := r.queries.Write(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(&userModel).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating user", err, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	err := r.queries.Read(ctx, "list users", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("id asc").Find(&userModels).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing users", err, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Delete removes a user. Dependent investments and withdrawals are removed by
// the database's ON DELETE CASCADE constraints.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	var result *gorm.DB
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		result = r.db.WithContext(ctx).Delete(&model.User{}, id)
		return result.Error
	})
	if err != nil {
		return r.handleDatabaseError("deleting user", err, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}

// AddToBalance credits the user's balance as a single update expression so
// concurrent mutations cannot lose an update
func (r *UserRepository) AddToBalance(ctx context.Context, id uint64, deltaInCents int64) error {
	var result *gorm.DB
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		result = r.db.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", deltaInCents),
				"updated_at": r.timeProvider.Now(),
			})
		return result.Error
	})
	if err != nil {
		return r.handleDatabaseError("crediting balance", err, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Balance credited", map[string]any{
		"user_id": id,
		"delta":   entity.CentsToString(deltaInCents),
	})
	return nil
}

// DebitIfSufficient debits the user's balance only when it covers the amount.
// The balance guard lives in the WHERE clause, so the check and the debit are
// one atomic statement.
func (r *UserRepository) DebitIfSufficient(ctx context.Context, id uint64, amountInCents int64) error {
	var result *gorm.DB
	err := r.queries.Write(ctx, func(ctx context.Context) error {
		result = r.db.WithContext(ctx).Model(&model.User{}).
			Where("id = ? AND balance >= ?", id, amountInCents).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", amountInCents),
				"updated_at": r.timeProvider.Now(),
			})
		return result.Error
	})
	if err != nil {
		return r.handleDatabaseError("debiting balance", err, id)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing user from an insufficient balance
		var count int64
		err := r.queries.Read(ctx, "check user existence", func(ctx context.Context) error {
			return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
		})
		if err != nil {
			return r.handleDatabaseError("checking user existence", err, id)
		}
		if count == 0 {
			return errs.ErrUserNotFound
		}

		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id": id,
			"amount":  entity.CentsToString(amountInCents),
		})
		return errs.ErrInsufficientBalance
	}

	r.logger.Debug("Balance debited", map[string]any{
		"user_id": id,
		"amount":  entity.CentsToString(amountInCents),
	})
	return nil
}
