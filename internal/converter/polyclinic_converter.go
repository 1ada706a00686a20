package converter

import (
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
)

func PolyclinicToResponse(polyclinic *entity.Polyclinic) *dto.PolyclinicResponse {
	resp := &dto.PolyclinicResponse{
		ID:        polyclinic.ID,
		Name:      polyclinic.Name,
		Image:     polyclinic.Image,
		SiteURL:   polyclinic.SiteURL,
		WorkTime:  polyclinic.WorkTime(),
		Rating:    int16(polyclinic.Rating),
		CreatedAt: polyclinic.CreatedAt,
		UpdatedAt: polyclinic.UpdatedAt,
	}

	if polyclinic.District != nil {
		resp.District = &dto.LookupResponse{ID: polyclinic.District.ID, Name: polyclinic.District.Name}
	}
	for _, a := range polyclinic.Addresses {
		resp.Addresses = append(resp.Addresses, a.Value)
	}
	for _, p := range polyclinic.Phones {
		resp.Phones = append(resp.Phones, p.Number)
	}
	for _, s := range polyclinic.Specialities {
		resp.Specialities = append(resp.Specialities, dto.LookupResponse{ID: s.ID, Name: s.Name})
	}

	return resp
}

func PolyclinicsToListResponse(polyclinics []entity.Polyclinic) *dto.PolyclinicListResponse {
	resp := &dto.PolyclinicListResponse{
		Polyclinics: make([]dto.PolyclinicResponse, 0, len(polyclinics)),
		Total:       len(polyclinics),
	}
	for i := range polyclinics {
		resp.Polyclinics = append(resp.Polyclinics, *PolyclinicToResponse(&polyclinics[i]))
	}
	return resp
}
