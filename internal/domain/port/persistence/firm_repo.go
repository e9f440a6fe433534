package persistence

import (
	"context"

	"github.com/multinvest/platform/internal/domain/entity"
)

// FirmRepository defines read operations for the seeded firm catalog
type FirmRepository interface {
	// List returns all firms ordered by ID
	List(ctx context.Context) ([]*entity.Firm, error)

	// GetByID retrieves a firm by ID; returns ErrFirmNotFound when absent
	GetByID(ctx context.Context, id uint64) (*entity.Firm, error)
}
