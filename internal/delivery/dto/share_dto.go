package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateShareRequest struct {
	Description  string          `json:"description" validate:"required"`
	StartDate    time.Time       `json:"start_date" validate:"required"`
	EndDate      time.Time       `json:"end_date" validate:"required"`
	Sum          decimal.Decimal `json:"sum"`
	Rating       int16           `json:"rating" validate:"omitempty,min=1,max=5"`
	PolyclinicID uint            `json:"polyclinic_id" validate:"required"`
}

type UpdateShareRequest struct {
	Description string           `json:"description" validate:"omitempty"`
	StartDate   *time.Time       `json:"start_date" validate:"omitempty"`
	EndDate     *time.Time       `json:"end_date" validate:"omitempty"`
	Sum         *decimal.Decimal `json:"sum" validate:"omitempty"`
	// Rating: nil leaves the value alone, 0 clears it, 1-5 sets it.
	Rating       *int16 `json:"rating" validate:"omitempty,min=0,max=5"`
	PolyclinicID uint   `json:"polyclinic_id" validate:"omitempty"`
}

type ShareResponse struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Sum         decimal.Decimal `json:"sum"`
	Rating      int16           `json:"rating,omitempty"`
	Polyclinic  *LookupResponse `json:"polyclinic,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ShareListResponse struct {
	Shares []ShareResponse `json:"shares"`
	Total  int             `json:"total"`
}
