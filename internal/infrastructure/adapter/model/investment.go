package model

import (
	"time"
)

// Investment represents the database model for investments.
// Deleting the owning user cascades; deleting the firm nulls the reference
// but keeps the investment.
type Investment struct {
	ID            uint64  `gorm:"primaryKey"`
	UserID        uint64  `gorm:"index;not null"`
	FirmID        *uint64 `gorm:"index"`
	TransactionID string  `gorm:"size:255;not null"`
	Amount        int64   `gorm:"not null"` // Amount in cents
	Status        string  `gorm:"size:50;not null;default:pending"`
	CreatedAt     time.Time

	User User  `gorm:"constraint:OnDelete:CASCADE"`
	Firm *Firm `gorm:"constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Investment
func (Investment) TableName() string {
	return "investments"
}
