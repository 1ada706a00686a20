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

type ShareHandler struct {
	shareUsecase usecase.ShareUsecase
	validator    *validator.CustomValidator
}

func NewShareHandler(shareUsecase usecase.ShareUsecase, validator *validator.CustomValidator) *ShareHandler {
	return &ShareHandler{
		shareUsecase: shareUsecase,
		validator:    validator,
	}
}

func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	share, err := h.shareUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrShareDatesSwapped:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create share")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Share created", share)
}

func (h *ShareHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	share, err := h.shareUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrShareNotFound:
			response.NotFound(w, "Share not found")
		default:
			response.InternalServerError(w, "Failed to load share")
		}
		return
	}

	response.Success(w, http.StatusOK, "Share retrieved", share)
}

func (h *ShareHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	polyclinicID := cast.ToUint(r.URL.Query().Get("polyclinic_id"))

	shares, err := h.shareUsecase.GetAll(r.Context(), polyclinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list shares")
		return
	}

	response.Success(w, http.StatusOK, "Shares retrieved", shares)
}

func (h *ShareHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	var req dto.UpdateShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	share, err := h.shareUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrShareNotFound:
			response.NotFound(w, "Share not found")
		case usecase.ErrShareDatesSwapped:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update share")
		}
		return
	}

	response.Success(w, http.StatusOK, "Share updated", share)
}

func (h *ShareHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := cast.ToUint(mux.Vars(r)["id"])

	if err := h.shareUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrShareNotFound:
			response.NotFound(w, "Share not found")
		default:
			response.InternalServerError(w, "Failed to delete share")
		}
		return
	}

	response.Success(w, http.StatusOK, "Share deleted", nil)
}
