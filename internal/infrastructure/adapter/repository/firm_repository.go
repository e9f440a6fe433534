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

// FirmRepository implements persistence.FirmRepository using GORM
type FirmRepository struct {
	db      *gorm.DB
	logger  coreport.Logger
	queries *QueryRunner
}

// NewFirmRepository creates a new FirmRepository instance
func NewFirmRepository(db *gorm.DB, logger coreport.Logger, queries *QueryRunner) *FirmRepository {
	return &FirmRepository{
		db:      db,
		logger:  logger,
		queries: queries,
	}
}

func firmModelToEntity(m *model.Firm) *entity.Firm {
	return &entity.Firm{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

// List returns all firms ordered by ID
func (r *FirmRepository) List(ctx context.Context) ([]*entity.Firm, error) {
	var firmModels []model.Firm
	err := r.queries.Read(ctx, "list firms", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("id asc").Find(&firmModels).Error
	})
	if err != nil {
		r.logger.Error("Database error when listing firms", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	firms := make([]*entity.Firm, 0, len(firmModels))
	for i := range firmModels {
		firms = append(firms, firmModelToEntity(&firmModels[i]))
	}
	return firms, nil
}

// GetByID retrieves a firm by ID
func (r *FirmRepository) GetByID(ctx context.Context, id uint64) (*entity.Firm, error) {
	var firmModel model.Firm
	err := r.queries.Read(ctx, "get firm", func(ctx context.Context) error {
		return r.db.WithContext(ctx).First(&firmModel, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrFirmNotFound
		}
		r.logger.Error("Database error when getting firm", map[string]any{
			"firm_id": id,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return firmModelToEntity(&firmModel), nil
}
