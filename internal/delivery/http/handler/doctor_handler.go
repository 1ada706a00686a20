package handler

import (
	"encoding/json"
	"net/http"

	"doctorbot/internal/delivery/dto"
	"doctorbot/internal/domain/entity"
	"doctorbot/internal/usecase"
	"doctorbot/pkg/response"
	"doctorbot/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/spf13/cast"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCost:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created", doctor)
}

func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	doctor, err := h.doctorUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to load doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved", doctor)
}

func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.DoctorFilter{
		Search:       q.Get("search"),
		SpecialityID: cast.ToUint(q.Get("speciality_id")),
		PositionID:   cast.ToUint(q.Get("position_id")),
		DistrictID:   cast.ToUint(q.Get("district_id")),
		PolyclinicID: cast.ToUint(q.Get("polyclinic_id")),
	}

	doctors, err := h.doctorUsecase.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved", doctors)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidCost:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated", doctor)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted", nil)
}

func (h *DoctorHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	doctor, err := h.doctorUsecase.Duplicate(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to duplicate doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor duplicated", doctor)
}
