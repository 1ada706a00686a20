package entity

import (
	"fmt"
	"time"
)

// DayOfWeek follows ISO numbering: 1 = Monday ... 7 = Sunday
type DayOfWeek int16

var dayOfWeekNames = map[DayOfWeek]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

func (d DayOfWeek) IsValid() bool {
	return d >= 1 && d <= 7
}

func (d DayOfWeek) String() string {
	if name, ok := dayOfWeekNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DayOfWeek(%d)", int16(d))
}

// Schedule is a weekly reception window at a polyclinic
type Schedule struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DayOfWeek    DayOfWeek `gorm:"type:smallint;not null" json:"day_of_week"`
	StartTime    string    `gorm:"type:time;not null" json:"start_time"`
	EndTime      string    `gorm:"type:time;not null" json:"end_time"`
	PolyclinicID uint      `gorm:"not null;index" json:"polyclinic_id"`
	AddressID    *uint     `gorm:"index" json:"address_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Polyclinic Polyclinic `gorm:"foreignKey:PolyclinicID" json:"polyclinic,omitempty"`
	Address    *Address   `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// Label formats the window for cards and admin lists
func (s *Schedule) Label() string {
	return fmt.Sprintf("%s %s-%s", s.DayOfWeek, s.StartTime, s.EndTime)
}
