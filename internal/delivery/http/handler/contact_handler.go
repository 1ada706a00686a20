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

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) CreatePhone(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	phone, err := h.contactUsecase.CreatePhone(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create phone")
		return
	}
	response.Success(w, http.StatusCreated, "Phone created", phone)
}

func (h *ContactHandler) GetPhones(w http.ResponseWriter, r *http.Request) {
	phones, err := h.contactUsecase.GetPhones(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list phones")
		return
	}
	response.Success(w, http.StatusOK, "Phones retrieved", phones)
}

func (h *ContactHandler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	if err := h.contactUsecase.DeletePhone(r.Context(), cast.ToUint(mux.Vars(r)["id"])); err != nil {
		switch err {
		case usecase.ErrPhoneNotFound:
			response.NotFound(w, "Phone not found")
		default:
			response.InternalServerError(w, "Failed to delete phone")
		}
		return
	}
	response.Success(w, http.StatusOK, "Phone deleted", nil)
}

func (h *ContactHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	address, err := h.contactUsecase.CreateAddress(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create address")
		return
	}
	response.Success(w, http.StatusCreated, "Address created", address)
}

func (h *ContactHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.contactUsecase.GetAddresses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list addresses")
		return
	}
	response.Success(w, http.StatusOK, "Addresses retrieved", addresses)
}

func (h *ContactHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.contactUsecase.DeleteAddress(r.Context(), cast.ToUint(mux.Vars(r)["id"])); err != nil {
		switch err {
		case usecase.ErrAddressNotFound:
			response.NotFound(w, "Address not found")
		default:
			response.InternalServerError(w, "Failed to delete address")
		}
		return
	}
	response.Success(w, http.StatusOK, "Address deleted", nil)
}
