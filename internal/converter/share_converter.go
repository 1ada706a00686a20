package converter

import (
	"time"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
)

func ShareToResponse(share *entity.Share, now time.Time) *dto.ShareResponse {
	resp := &dto.ShareResponse{
		ID:          share.ID,
		Description: share.Description,
		StartDate:   share.StartDate,
		EndDate:     share.EndDate,
		Sum:         share.Sum,
		Rating:      int16(share.Rating),
		Active:      share.IsActive(now),
		CreatedAt:   share.CreatedAt,
		UpdatedAt:   share.UpdatedAt,
	}

	if share.Polyclinic.ID != 0 {
		resp.Polyclinic = &dto.LookupResponse{ID: share.Polyclinic.ID, Name: share.Polyclinic.Name}
	}

	return resp
}

func SharesToListResponse(shares []entity.Share, now time.Time) *dto.ShareListResponse {
	resp := &dto.ShareListResponse{
		Shares: make([]dto.ShareResponse, 0, len(shares)),
		Total:  len(shares),
	}
	for i := range shares {
		resp.Shares = append(resp.Shares, *ShareToResponse(&shares[i], now))
	}
	return resp
}
