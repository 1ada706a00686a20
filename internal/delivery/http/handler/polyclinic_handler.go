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

type PolyclinicHandler struct {
	polyclinicUsecase usecase.PolyclinicUsecase
	validator         *validator.CustomValidator
}

func NewPolyclinicHandler(polyclinicUsecase usecase.PolyclinicUsecase, validator *validator.CustomValidator) *PolyclinicHandler {
	return &PolyclinicHandler{
		polyclinicUsecase: polyclinicUsecase,
		validator:         validator,
	}
}

func (h *PolyclinicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePolyclinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	polyclinic, err := h.polyclinicUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create polyclinic")
		return
	}

	response.Success(w, http.StatusCreated, "Polyclinic created", polyclinic)
}

func (h *PolyclinicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	polyclinic, err := h.polyclinicUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPolyclinicNotFound:
			response.NotFound(w, "Polyclinic not found")
		default:
			response.InternalServerError(w, "Failed to load polyclinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Polyclinic retrieved", polyclinic)
}

func (h *PolyclinicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.PolyclinicFilter{
		Search:       q.Get("search"),
		SpecialityID: cast.ToUint(q.Get("speciality_id")),
		DistrictID:   cast.ToUint(q.Get("district_id")),
	}

	polyclinics, err := h.polyclinicUsecase.GetAll(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list polyclinics")
		return
	}

	response.Success(w, http.StatusOK, "Polyclinics retrieved", polyclinics)
}

func (h *PolyclinicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	var req dto.UpdatePolyclinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	polyclinic, err := h.polyclinicUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPolyclinicNotFound:
			response.NotFound(w, "Polyclinic not found")
		default:
			response.InternalServerError(w, "Failed to update polyclinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Polyclinic updated", polyclinic)
}

func (h *PolyclinicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	if err := h.polyclinicUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPolyclinicNotFound:
			response.NotFound(w, "Polyclinic not found")
		default:
			response.InternalServerError(w, "Failed to delete polyclinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Polyclinic deleted", nil)
}

func (h *PolyclinicHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	polyclinic, err := h.polyclinicUsecase.Duplicate(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPolyclinicNotFound:
			response.NotFound(w, "Polyclinic not found")
		default:
			response.InternalServerError(w, "Failed to duplicate polyclinic")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Polyclinic duplicated", polyclinic)
}
