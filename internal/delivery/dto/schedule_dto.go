package dto

import "time"

type CreateScheduleRequest struct {
	DayOfWeek    int16  `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	PolyclinicID uint   `json:"polyclinic_id" validate:"required"`
	AddressID    *uint  `json:"address_id" validate:"omitempty"`
}

type UpdateScheduleRequest struct {
	DayOfWeek    int16  `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime    string `json:"start_time" validate:"omitempty"`
	EndTime      string `json:"end_time" validate:"omitempty"`
	PolyclinicID uint   `json:"polyclinic_id" validate:"omitempty"`
	AddressID    *uint  `json:"address_id" validate:"omitempty"`
}

type ScheduleResponse struct {
	ID         uint            `json:"id"`
	DayOfWeek  int16           `json:"day_of_week"`
	DayName    string          `json:"day_name"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Label      string          `json:"label"`
	Polyclinic *LookupResponse `json:"polyclinic,omitempty"`
	Address    string          `json:"address,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
