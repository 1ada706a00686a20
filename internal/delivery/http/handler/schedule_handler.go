package handler

import (
	"encoding/json"
	"net/http"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/usecase"
	"doctorbot/pkg/response"
	"doctorbot/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/spf13/cast"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDayOfWeek:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created", schedule)
}

func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	schedule, err := h.scheduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to load schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved", schedule)
}

func (h *ScheduleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	polyclinicID := cast.ToUint(r.URL.Query().Get("polyclinic_id"))

	schedules, err := h.scheduleUsecase.GetAll(r.Context(), polyclinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved", schedules)
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrInvalidDayOfWeek:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated", schedule)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	if err := h.scheduleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted", nil)
}
