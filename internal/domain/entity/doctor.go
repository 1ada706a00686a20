package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a private practitioner listed in the directory
type Doctor struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string          `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string          `gorm:"type:varchar(50);not null" json:"last_name"`
	PaternalName string          `gorm:"type:varchar(50);not null" json:"paternal_name"`
	Phone        string          `gorm:"type:varchar(15);not null" json:"phone"`
	Image        string          `gorm:"type:varchar(255)" json:"image,omitempty"`
	SpecialityID uint            `gorm:"not null;index" json:"speciality_id"`
	PositionID   uint            `gorm:"not null;index" json:"position_id"`
	Experience   int             `gorm:"not null" json:"experience"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Rating       Rating          `gorm:"type:smallint" json:"rating,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Speciality  Speciality   `gorm:"foreignKey:SpecialityID" json:"speciality,omitempty"`
	Position    Position     `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Polyclinics []Polyclinic `gorm:"many2many:doctor_polyclinics" json:"polyclinics,omitempty"`
	Districts   []District   `gorm:"many2many:doctor_districts" json:"districts,omitempty"`
	Schedules   []Schedule   `gorm:"many2many:doctor_schedules" json:"schedules,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// FullName returns "Last First Paternal" the way cards display it
func (d *Doctor) FullName() string {
	return fmt.Sprintf("%s %s %s", d.LastName, d.FirstName, d.PaternalName)
}
