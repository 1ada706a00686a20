package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Share is a time-bounded promotional campaign attached to a polyclinic
type Share struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	StartDate    time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time       `gorm:"type:date;not null;index" json:"end_date"`
	Sum          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sum"`
	Rating       Rating          `gorm:"type:smallint" json:"rating,omitempty"`
	PolyclinicID uint            `gorm:"not null;index" json:"polyclinic_id"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Polyclinic Polyclinic `gorm:"foreignKey:PolyclinicID" json:"polyclinic,omitempty"`
}

func (Share) TableName() string {
	return "shares"
}

// IsActive reports whether the campaign has not yet expired
func (s *Share) IsActive(now time.Time) bool {
	return !s.EndDate.Before(now.Truncate(24 * time.Hour))
}
