package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	FirstName     string          `json:"first_name" validate:"required,max=50"`
	LastName      string          `json:"last_name" validate:"required,max=50"`
	PaternalName  string          `json:"paternal_name" validate:"required,max=50"`
	Phone         string          `json:"phone" validate:"required,max=15"`
	Image         string          `json:"image" validate:"omitempty,max=255"`
	SpecialityID  uint            `json:"speciality_id" validate:"required"`
	PositionID    uint            `json:"position_id" validate:"required"`
	Experience    int             `json:"experience" validate:"required,min=1,max=100"`
	Cost          decimal.Decimal `json:"cost"`
	Rating        int16           `json:"rating" validate:"omitempty,min=1,max=5"`
	PolyclinicIDs []uint          `json:"polyclinic_ids" validate:"omitempty,dive,required"`
	DistrictIDs   []uint          `json:"district_ids" validate:"omitempty,dive,required"`
	ScheduleIDs   []uint          `json:"schedule_ids" validate:"omitempty,dive,required"`
}

type UpdateDoctorRequest struct {
	FirstName    string           `json:"first_name" validate:"omitempty,max=50"`
	LastName     string           `json:"last_name" validate:"omitempty,max=50"`
	PaternalName string           `json:"paternal_name" validate:"omitempty,max=50"`
	Phone        string           `json:"phone" validate:"omitempty,max=15"`
	Image        string           `json:"image" validate:"omitempty,max=255"`
	SpecialityID uint             `json:"speciality_id" validate:"omitempty"`
	PositionID   uint             `json:"position_id" validate:"omitempty"`
	Experience   int              `json:"experience" validate:"omitempty,min=1,max=100"`
	Cost         *decimal.Decimal `json:"cost" validate:"omitempty"`
	// Rating: nil leaves the value alone, 0 clears it, 1-5 sets it.
	Rating        *int16 `json:"rating" validate:"omitempty,min=0,max=5"`
	PolyclinicIDs []uint `json:"polyclinic_ids" validate:"omitempty,dive,required"`
	DistrictIDs   []uint `json:"district_ids" validate:"omitempty,dive,required"`
	ScheduleIDs   []uint `json:"schedule_ids" validate:"omitempty,dive,required"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uint               `json:"id"`
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	PaternalName string             `json:"paternal_name"`
	FullName     string             `json:"full_name"`
	Phone        string             `json:"phone"`
	Image        string             `json:"image,omitempty"`
	Speciality   LookupResponse     `json:"speciality"`
	Position     LookupResponse     `json:"position"`
	Experience   int                `json:"experience"`
	Cost         decimal.Decimal    `json:"cost"`
	Rating       int16              `json:"rating,omitempty"`
	Polyclinics  []LookupResponse   `json:"polyclinics,omitempty"`
	Districts    []LookupResponse   `json:"districts,omitempty"`
	Schedules    []ScheduleResponse `json:"schedules,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
