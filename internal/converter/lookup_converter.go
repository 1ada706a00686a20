package converter

import (
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
)

func SpecialityToResponse(s *entity.Speciality) *dto.LookupResponse {
	return &dto.LookupResponse{ID: s.ID, Name: s.Name}
}

func SpecialitiesToListResponse(items []entity.Speciality) *dto.LookupListResponse {
	resp := &dto.LookupListResponse{Items: make([]dto.LookupResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *SpecialityToResponse(&items[i]))
	}
	return resp
}

func DistrictToResponse(d *entity.District) *dto.LookupResponse {
	return &dto.LookupResponse{ID: d.ID, Name: d.Name}
}

func DistrictsToListResponse(items []entity.District) *dto.LookupListResponse {
	resp := &dto.LookupListResponse{Items: make([]dto.LookupResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *DistrictToResponse(&items[i]))
	}
	return resp
}

func PositionToResponse(p *entity.Position) *dto.LookupResponse {
	return &dto.LookupResponse{ID: p.ID, Name: p.Name}
}

func PositionsToListResponse(items []entity.Position) *dto.LookupListResponse {
	resp := &dto.LookupListResponse{Items: make([]dto.LookupResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *PositionToResponse(&items[i]))
	}
	return resp
}

func PhoneToResponse(p *entity.Phone) *dto.ContactResponse {
	return &dto.ContactResponse{ID: p.ID, Value: p.Number}
}

func PhonesToListResponse(items []entity.Phone) *dto.ContactListResponse {
	resp := &dto.ContactListResponse{Items: make([]dto.ContactResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *PhoneToResponse(&items[i]))
	}
	return resp
}

func AddressToResponse(a *entity.Address) *dto.ContactResponse {
	return &dto.ContactResponse{ID: a.ID, Value: a.Value}
}

func AddressesToListResponse(items []entity.Address) *dto.ContactListResponse {
	resp := &dto.ContactListResponse{Items: make([]dto.ContactResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		resp.Items = append(resp.Items, *AddressToResponse(&items[i]))
	}
	return resp
}

func EditorToResponse(e *entity.Editor) *dto.EditorResponse {
	return &dto.EditorResponse{ID: e.ID, Email: e.Email, FullName: e.FullName}
}
