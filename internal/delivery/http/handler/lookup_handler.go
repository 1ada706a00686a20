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

// LookupHandler serves the speciality, district and position catalogs.
type LookupHandler struct {
	lookupUsecase usecase.LookupUsecase
	validator     *validator.CustomValidator
}

func NewLookupHandler(lookupUsecase usecase.LookupUsecase, validator *validator.CustomValidator) *LookupHandler {
	return &LookupHandler{
		lookupUsecase: lookupUsecase,
		validator:     validator,
	}
}

func (h *LookupHandler) decodeLookup(w http.ResponseWriter, r *http.Request) (*dto.CreateLookupRequest, bool) {
	var req dto.CreateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func (h *LookupHandler) CreateSpeciality(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	speciality, err := h.lookupUsecase.CreateSpeciality(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to create speciality")
		return
	}
	response.Success(w, http.StatusCreated, "Speciality created", speciality)
}

func (h *LookupHandler) GetSpecialities(w http.ResponseWriter, r *http.Request) {
	items, err := h.lookupUsecase.GetSpecialities(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to list specialities")
		return
	}
	response.Success(w, http.StatusOK, "Specialities retrieved", items)
}

func (h *LookupHandler) UpdateSpeciality(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	speciality, err := h.lookupUsecase.UpdateSpeciality(r.Context(), cast.ToUint(mux.Vars(r)["id"]), &dto.UpdateLookupRequest{Name: req.Name})
	if err != nil {
		switch err {
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Speciality not found")
		default:
			response.InternalServerError(w, "Failed to update speciality")
		}
		return
	}
	response.Success(w, http.StatusOK, "Speciality updated", speciality)
}

func (h *LookupHandler) DeleteSpeciality(w http.ResponseWriter, r *http.Request) {
	if err := h.lookupUsecase.DeleteSpeciality(r.Context(), cast.ToUint(mux.Vars(r)["id"])); err != nil {
		switch err {
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Speciality not found")
		default:
			response.InternalServerError(w, "Failed to delete speciality")
		}
		return
	}
	response.Success(w, http.StatusOK, "Speciality deleted", nil)
}

func (h *LookupHandler) CreateDistrict(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	district, err := h.lookupUsecase.CreateDistrict(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to create district")
		return
	}
	response.Success(w, http.StatusCreated, "District created", district)
}

func (h *LookupHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	items, err := h.lookupUsecase.GetDistricts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list districts")
		return
	}
	response.Success(w, http.StatusOK, "Districts retrieved", items)
}

func (h *LookupHandler) UpdateDistrict(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	district, err := h.lookupUsecase.UpdateDistrict(r.Context(), cast.ToUint(mux.Vars(r)["id"]), &dto.UpdateLookupRequest{Name: req.Name})
	if err != nil {
		switch err {
		case usecase.ErrDistrictNotFound:
			response.NotFound(w, "District not found")
		default:
			response.InternalServerError(w, "Failed to update district")
		}
		return
	}
	response.Success(w, http.StatusOK, "District updated", district)
}

func (h *LookupHandler) DeleteDistrict(w http.ResponseWriter, r *http.Request) {
	if err := h.lookupUsecase.DeleteDistrict(r.Context(), cast.ToUint(mux.Vars(r)["id"])); err != nil {
		switch err {
		case usecase.ErrDistrictNotFound:
			response.NotFound(w, "District not found")
		default:
			response.InternalServerError(w, "Failed to delete district")
		}
		return
	}
	response.Success(w, http.StatusOK, "District deleted", nil)
}

func (h *LookupHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	position, err := h.lookupUsecase.CreatePosition(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to create position")
		return
	}
	response.Success(w, http.StatusCreated, "Position created", position)
}

func (h *LookupHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	items, err := h.lookupUsecase.GetPositions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list positions")
		return
	}
	response.Success(w, http.StatusOK, "Positions retrieved", items)
}

func (h *LookupHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLookup(w, r)
	if !ok {
		return
	}

	position, err := h.lookupUsecase.UpdatePosition(r.Context(), cast.ToUint(mux.Vars(r)["id"]), &dto.UpdateLookupRequest{Name: req.Name})
	if err != nil {
		switch err {
		case usecase.ErrPositionNotFound:
			response.NotFound(w, "Position not found")
		default:
			response.InternalServerError(w, "Failed to update position")
		}
		return
	}
	response.Success(w, http.StatusOK, "Position updated", position)
}

func (h *LookupHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.lookupUsecase.DeletePosition(r.Context(), cast.ToUint(mux.Vars(r)["id"])); err != nil {
		switch err {
		case usecase.ErrPositionNotFound:
			response.NotFound(w, "Position not found")
		default:
			response.InternalServerError(w, "Failed to delete position")
		}
		return
	}
	response.Success(w, http.StatusOK, "Position deleted", nil)
}
