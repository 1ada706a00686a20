package converter

import (
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	resp := &dto.DoctorResponse{
		ID:           doctor.ID,
		FirstName:    doctor.FirstName,
		LastName:     doctor.LastName,
		PaternalName: doctor.PaternalName,
		FullName:     doctor.FullName(),
		Phone:        doctor.Phone,
		Image:        doctor.Image,
		Speciality:   dto.LookupResponse{ID: doctor.Speciality.ID, Name: doctor.Speciality.Name},
		Position:     dto.LookupResponse{ID: doctor.Position.ID, Name: doctor.Position.Name},
		Experience:   doctor.Experience,
		Cost:         doctor.Cost,
		Rating:       int16(doctor.Rating),
		CreatedAt:    doctor.CreatedAt,
		UpdatedAt:    doctor.UpdatedAt,
	}

	for _, p := range doctor.Polyclinics {
		resp.Polyclinics = append(resp.Polyclinics, dto.LookupResponse{ID: p.ID, Name: p.Name})
	}
	for _, d := range doctor.Districts {
		resp.Districts = append(resp.Districts, dto.LookupResponse{ID: d.ID, Name: d.Name})
	}
	for i := range doctor.Schedules {
		resp.Schedules = append(resp.Schedules, *ScheduleToResponse(&doctor.Schedules[i]))
	}

	return resp
}

func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	resp := &dto.DoctorListResponse{
		Doctors: make([]dto.DoctorResponse, 0, len(doctors)),
		Total:   len(doctors),
	}
	for i := range doctors {
		resp.Doctors = append(resp.Doctors, *DoctorToResponse(&doctors[i]))
	}
	return resp
}
