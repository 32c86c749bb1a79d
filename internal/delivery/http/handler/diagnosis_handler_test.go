package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/usecase"
	"hospital-patient-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDiagnosisUsecase is a mock implementation of usecase.DiagnosisUsecase
type MockDiagnosisUsecase struct {
	mock.Mock
}

func (m *MockDiagnosisUsecase) Create(ctx context.Context, req *dto.DiagnosisRequest) (*dto.DiagnosisResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DiagnosisResponse), args.Error(1)
}

func (m *MockDiagnosisUsecase) Assign(ctx context.Context, patientID uint, req *dto.AssignDiagnosisRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *MockDiagnosisUsecase) TopDiagnoses(ctx context.Context) ([]dto.TopDiagnosisResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TopDiagnosisResponse), args.Error(1)
}

func setupDiagnosisHandler() (*DiagnosisHandler, *MockDiagnosisUsecase) {
	mockUsecase := &MockDiagnosisUsecase{}
	h := NewDiagnosisHandler(mockUsecase, validator.NewValidator(), false)
	return h, mockUsecase
}

func TestCreateDiagnosis_Success(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("Create", mock.Anything, mock.AnythingOfType("*dto.DiagnosisRequest")).Return(&dto.DiagnosisResponse{
		ID:          1,
		Name:        "Migraine",
		Description: "Recurrent headache",
	}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/diagnoses", map[string]interface{}{
		"name":        "Migraine",
		"description": "Recurrent headache",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Diagnosis created successfully.", body["success"])
	diagnosis := body["diagnosis"].(map[string]interface{})
	assert.Equal(t, "Migraine", diagnosis["name"])
}

func TestCreateDiagnosis_NameRequired(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/diagnoses", map[string]interface{}{
		"description": "Recurrent headache",
	}))

	assert.Equal(t, 419, rec.Code)
	errs := decodeResponse(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDiagnosis_DescriptionOptional(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("Create", mock.Anything, mock.Anything).Return(&dto.DiagnosisResponse{ID: 2, Name: "Migraine"}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/diagnoses", map[string]interface{}{
		"name": "Migraine",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssignDiagnosis_Success(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("Assign", mock.Anything, uint(7), mock.AnythingOfType("*dto.AssignDiagnosisRequest")).Return(&dto.PatientResponse{
		ID: 7,
		Diagnoses: []dto.AssignedDiagnosis{
			{ID: 3, Name: "Migraine", Pivot: dto.PivotResponse{PatientID: 7, DiagnosisID: 3}},
		},
	}, nil)

	req := mux.SetURLVars(jsonRequest(t, http.MethodPost, "/diagnoses/7/assign-diagnosis", map[string]interface{}{
		"diagnosis_id":   3,
		"observation":    "Observation text",
		"diagnosis_date": "2023-12-31",
	}), map[string]string{"patient_id": "7"})

	rec := httptest.NewRecorder()
	h.Assign(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Diagnosis assigned to the patient successfully.", body["success"])
	patient := body["patient"].(map[string]interface{})
	assert.Len(t, patient["diagnoses"].([]interface{}), 1)
}

func TestAssignDiagnosis_PatientNotFound(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("Assign", mock.Anything, uint(99), mock.Anything).Return(nil, usecase.ErrPatientNotFound)

	req := mux.SetURLVars(jsonRequest(t, http.MethodPost, "/diagnoses/99/assign-diagnosis", map[string]interface{}{
		"diagnosis_id":   3,
		"diagnosis_date": "2023-12-31",
	}), map[string]string{"patient_id": "99"})

	rec := httptest.NewRecorder()
	h.Assign(rec, req)

	assert.Equal(t, 419, rec.Code)
	assert.Equal(t, "The patient was not found.", decodeResponse(t, rec)["error"])
}

func TestAssignDiagnosis_UnknownDiagnosisID(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("Assign", mock.Anything, uint(7), mock.Anything).Return(nil, validator.InvalidSelectionError("diagnosis_id"))

	req := mux.SetURLVars(jsonRequest(t, http.MethodPost, "/diagnoses/7/assign-diagnosis", map[string]interface{}{
		"diagnosis_id":   12345,
		"diagnosis_date": "2023-12-31",
	}), map[string]string{"patient_id": "7"})

	rec := httptest.NewRecorder()
	h.Assign(rec, req)

	assert.Equal(t, 419, rec.Code)
	errs := decodeResponse(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "diagnosis_id")
}

func TestAssignDiagnosis_MissingDate(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	req := mux.SetURLVars(jsonRequest(t, http.MethodPost, "/diagnoses/7/assign-diagnosis", map[string]interface{}{
		"diagnosis_id": 3,
	}), map[string]string{"patient_id": "7"})

	rec := httptest.NewRecorder()
	h.Assign(rec, req)

	assert.Equal(t, 419, rec.Code)
	errs := decodeResponse(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "diagnosis_date")
	mockUsecase.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestTopDiagnoses_Success(t *testing.T) {
	h, mockUsecase := setupDiagnosisHandler()

	mockUsecase.On("TopDiagnoses", mock.Anything).Return([]dto.TopDiagnosisResponse{
		{Name: "Migraine", Description: "Recurrent headache"},
		{Name: "Gastroenteritis", Description: "Stomach inflammation"},
	}, nil)

	rec := httptest.NewRecorder()
	h.TopDiagnoses(rec, httptest.NewRequest(http.MethodGet, "/diagnoses/top-diagnoses-last-six-months", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	top := body["top_diagnoses"].([]interface{})
	assert.Len(t, top, 2)

	first := top[0].(map[string]interface{})
	assert.Equal(t, "Migraine", first["name"])
	// Only name and description survive the aggregation.
	assert.NotContains(t, first, "count")
	assert.NotContains(t, first, "id")
}
