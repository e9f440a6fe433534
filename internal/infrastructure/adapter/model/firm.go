package model

// Firm represents the database model for investable firms
type Firm struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:text"`
}

// TableName specifies the table name for Firm
func (Firm) TableName() string {
	return "firms"
}
