package model

import (
	"time"
)

// Withdrawal represents the database model for withdrawals
type Withdrawal struct {
	ID            uint64 `gorm:"primaryKey"`
	UserID        uint64 `gorm:"index;not null"`
	WalletAddress string `gorm:"size:255;not null"`
	Amount        int64  `gorm:"not null"` // Amount in cents
	Status        string `gorm:"size:50;not null;default:pending"`
	CreatedAt     time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}
