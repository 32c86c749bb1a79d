package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/usecase"
	"hospital-patient-api/pkg/response"
	"hospital-patient-api/pkg/validator"

	"github.com/gorilla/mux"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
	debug            bool
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator, debug bool) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
		debug:            debug,
	}
}

func (h *DiagnosisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BusinessError(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create the diagnosis.", err, h.debug)
		return
	}

	response.OK(w, map[string]interface{}{
		"success":   "Diagnosis created successfully.",
		"diagnosis": diagnosis,
	})
}

// Assign attaches an existing diagnosis to a patient with its pivot
// attributes and returns the patient with the updated association set.
func (h *DiagnosisHandler) Assign(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(mux.Vars(r)["patient_id"])
	if err != nil {
		response.BusinessError(w, "The patient was not found.")
		return
	}

	var req dto.AssignDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BusinessError(w, "Invalid request body.")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.diagnosisUsecase.Assign(r.Context(), patientID, &req)
	if err != nil {
		var fieldErrs validator.FieldErrors
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.BusinessError(w, "The patient was not found.")
		case errors.As(err, &fieldErrs):
			response.ValidationFailed(w, fieldErrs)
		default:
			response.InternalError(w, "Failed to assign the diagnosis to the patient.", err, h.debug)
		}
		return
	}

	response.OK(w, map[string]interface{}{
		"success": "Diagnosis assigned to the patient successfully.",
		"patient": patient,
	})
}

// TopDiagnoses returns at most five diagnoses ranked by how many times
// they were assigned in the trailing six months.
func (h *DiagnosisHandler) TopDiagnoses(w http.ResponseWriter, r *http.Request) {
	topDiagnoses, err := h.diagnosisUsecase.TopDiagnoses(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch the most assigned diagnoses.", err, h.debug)
		return
	}

	response.OK(w, map[string]interface{}{
		"top_diagnoses": topDiagnoses,
	})
}
