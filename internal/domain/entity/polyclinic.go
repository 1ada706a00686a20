package entity

import (
	"fmt"
	"time"
)

// Polyclinic represents a clinic with its contact surface
type Polyclinic struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	Image      string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	SiteURL    string    `gorm:"type:varchar(255)" json:"site_url,omitempty"`
	DistrictID *uint     `gorm:"index" json:"district_id,omitempty"`
	WorkStart  string    `gorm:"type:time" json:"work_start,omitempty"`
	WorkEnd    string    `gorm:"type:time" json:"work_end,omitempty"`
	Rating     Rating    `gorm:"type:smallint" json:"rating,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	District     *District    `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Addresses    []Address    `gorm:"many2many:polyclinic_addresses" json:"addresses,omitempty"`
	Phones       []Phone      `gorm:"many2many:polyclinic_phones" json:"phones,omitempty"`
	Specialities []Speciality `gorm:"many2many:polyclinic_specialities" json:"specialities,omitempty"`
	Shares       []Share      `gorm:"foreignKey:PolyclinicID" json:"shares,omitempty"`
}

func (Polyclinic) TableName() string {
	return "polyclinics"
}

// WorkTime formats the daily work window for display
func (p *Polyclinic) WorkTime() string {
	if p.WorkStart == "" || p.WorkEnd == "" {
		return "-"
	}
	return fmt.Sprintf("%s - %s", p.WorkStart, p.WorkEnd)
}
