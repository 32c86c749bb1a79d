package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/usecase"
	"hospital-patient-api/pkg/response"
	"hospital-patient-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	// debug forwards raw error text in 500 responses.
	debug bool
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, debug bool) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		debug:          debug,
	}
}

// List returns every patient with its full diagnosis association set.
// No pagination: the entire table is returned.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch the patient list.", err, h.debug)
		return
	}

	response.OK(w, map[string]interface{}{
		"patients": patients,
	})
}

// Search matches the query against first name, last name or document.
func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("search_query")

	patients, err := h.patientUsecase.Search(r.Context(), searchQuery)
	if err != nil {
		response.InternalError(w, "Failed to search patients.", err, h.debug)
		return
	}

	response.OK(w, map[string]interface{}{
		"patients": patients,
	})
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BusinessError(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		switch {
		case errors.Is(err, usecase.ErrPatientAlreadyRegistered):
			response.BusinessError(w, "The patient is already registered.")
		case errors.As(err, &fieldErrs):
			response.ValidationFailed(w, fieldErrs)
		default:
			response.InternalError(w, "Failed to register the patient, contact the administrator.", err, h.debug)
		}
		return
	}

	response.OK(w, map[string]interface{}{
		"success": "Patient registered successfully.",
		"patient": patient,
	})
}

// Update replaces the full patient record. All fields are required on
// every call, there is no partial patch.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BusinessError(w, "The patient was not found.")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BusinessError(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.BusinessError(w, "The patient was not found.")
		case errors.As(err, &fieldErrs):
			response.ValidationFailed(w, fieldErrs)
		default:
			response.InternalError(w, "Failed to update the patient information.", err, h.debug)
		}
		return
	}

	response.OK(w, map[string]interface{}{
		"success": "Patient information updated.",
		"patient": patient,
	})
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BusinessError(w, "The patient was not found.")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.BusinessError(w, "The patient was not found.")
			return
		}
		response.InternalError(w, "Failed to delete the patient and their diagnoses.", err, h.debug)
		return
	}

	response.OK(w, map[string]interface{}{
		"success": "Patient and their diagnoses (if any) deleted successfully.",
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
