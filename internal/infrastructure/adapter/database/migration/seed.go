package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/multinvest/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AdminAccount holds the bootstrap administrator credentials
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

// defaultFirms are the investment firms available on a fresh deployment
var defaultFirms = []model.Firm{
	{
		Name:        "Acme Estates",
		Description: "Luxury villas and apartments in prime locations.",
		ImageURL:    "https://images.unsplash.com/photo-1505691938895-1758d7feb511",
	},
	{
		Name:        "BlueSky Realty",
		Description: "Affordable housing projects for first-time buyers.",
		ImageURL:    "https://images.unsplash.com/photo-1494526585095-c41746248156",
	},
	{
		Name:        "Summit Homes",
		Description: "Exclusive high-rise apartments with modern amenities.",
		ImageURL:    "https://images.unsplash.com/photo-1568605114967-8130f3a36994",
	},
}

// Seeder inserts the bootstrap data a fresh database needs: the admin
// account and the firm catalogue. Every step is idempotent so it can run
// on every startup.
type Seeder struct {
	db           *gorm.DB
	hasher       coreport.PasswordHasher
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB, hasher coreport.PasswordHasher, logger coreport.Logger, timeProvider coreport.TimeProvider) *Seeder {
	return &Seeder{
		db:           db,
		hasher:       hasher,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// SeedAll seeds the admin account and the default firms
func (s *Seeder) SeedAll(ctx context.Context, admin AdminAccount) error {
	if err := s.seedAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	if err := s.seedFirms(ctx); err != nil {
		return fmt.Errorf("failed to seed firms: %w", err)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, admin AdminAccount) error {
	if admin.Email == "" || admin.Password == "" {
		return errors.New("admin email and password must be configured")
	}

	var existing model.User
	err := s.db.WithContext(ctx).Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		s.logger.Debug("Admin account already present, skipping", map[string]any{
			"user_id": existing.ID,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(admin.Password)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	record := model.User{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hash,
		Balance:      0,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}

	s.logger.Info("Admin account created", map[string]any{
		"user_id": record.ID,
	})
	return nil
}

func (s *Seeder) seedFirms(ctx context.Context) error {
	for _, firm := range defaultFirms {
		var existing model.Firm
		err := s.db.WithContext(ctx).Where("name = ?", firm.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := firm
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
		s.logger.Info("Firm seeded", map[string]any{
			"firm_id": record.ID,
			"name":    record.Name,
		})
	}
	return nil
}
