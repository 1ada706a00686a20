package converter

import (
	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
)

func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:        schedule.ID,
		DayOfWeek: int16(schedule.DayOfWeek),
		DayName:   schedule.DayOfWeek.String(),
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		Label:     schedule.Label(),
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}

	if schedule.Polyclinic.ID != 0 {
		resp.Polyclinic = &dto.LookupResponse{ID: schedule.Polyclinic.ID, Name: schedule.Polyclinic.Name}
	}
	if schedule.Address != nil {
		resp.Address = schedule.Address.Value
	}

	return resp
}

func SchedulesToListResponse(schedules []entity.Schedule) *dto.ScheduleListResponse {
	resp := &dto.ScheduleListResponse{
		Schedules: make([]dto.ScheduleResponse, 0, len(schedules)),
		Total:     len(schedules),
	}
	for i := range schedules {
		resp.Schedules = append(resp.Schedules, *ScheduleToResponse(&schedules[i]))
	}
	return resp
}
