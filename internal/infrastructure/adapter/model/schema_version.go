package model

import (
	"time"
)

// SchemaVersion tracks which schema revision has been applied
type SchemaVersion struct {
	ID        uint64    `gorm:"primaryKey"`
	Version   string    `gorm:"size:50;not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
