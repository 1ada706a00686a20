package dto

import "time"

type CreatePolyclinicRequest struct {
	Name          string `json:"name" validate:"required,max=50"`
	Image         string `json:"image" validate:"omitempty,max=255"`
	SiteURL       string `json:"site_url" validate:"omitempty,url,max=255"`
	DistrictID    *uint  `json:"district_id" validate:"omitempty"`
	WorkStart     string `json:"work_start" validate:"omitempty"`
	WorkEnd       string `json:"work_end" validate:"omitempty"`
	Rating        int16  `json:"rating" validate:"omitempty,min=1,max=5"`
	AddressIDs    []uint `json:"address_ids" validate:"omitempty,dive,required"`
	PhoneIDs      []uint `json:"phone_ids" validate:"omitempty,dive,required"`
	SpecialityIDs []uint `json:"speciality_ids" validate:"omitempty,dive,required"`
}

type UpdatePolyclinicRequest struct {
	Name       string `json:"name" validate:"omitempty,max=50"`
	Image      string `json:"image" validate:"omitempty,max=255"`
	SiteURL    string `json:"site_url" validate:"omitempty,url,max=255"`
	DistrictID *uint  `json:"district_id" validate:"omitempty"`
	WorkStart  string `json:"work_start" validate:"omitempty"`
	WorkEnd    string `json:"work_end" validate:"omitempty"`
	// Rating: nil leaves the value alone, 0 clears it, 1-5 sets it.
	Rating        *int16 `json:"rating" validate:"omitempty,min=0,max=5"`
	AddressIDs    []uint `json:"address_ids" validate:"omitempty,dive,required"`
	PhoneIDs      []uint `json:"phone_ids" validate:"omitempty,dive,required"`
	SpecialityIDs []uint `json:"speciality_ids" validate:"omitempty,dive,required"`
}

type PolyclinicResponse struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Image        string           `json:"image,omitempty"`
	SiteURL      string           `json:"site_url,omitempty"`
	District     *LookupResponse  `json:"district,omitempty"`
	WorkTime     string           `json:"work_time"`
	Rating       int16            `json:"rating,omitempty"`
	Addresses    []string         `json:"addresses,omitempty"`
	Phones       []string         `json:"phones,omitempty"`
	Specialities []LookupResponse `json:"specialities,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type PolyclinicListResponse struct {
	Polyclinics []PolyclinicResponse `json:"polyclinics"`
	Total       int                  `json:"total"`
}
