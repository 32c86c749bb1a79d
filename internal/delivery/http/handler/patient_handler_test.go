package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

// MockPatientUsecase is a mock implementation of usecase.PatientUsecase
type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PatientResponse), args.Error(1)
}

func (m *MockPatientUsecase) Search(ctx context.Context, query string) ([]dto.PatientResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PatientResponse), args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, id uint, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupPatientHandler(debug bool) (*PatientHandler, *MockPatientUsecase) {
	mockUsecase := &MockPatientUsecase{}
	h := NewPatientHandler(mockUsecase, validator.NewValidator(), debug)
	return h, mockUsecase
}

func validPatientBody() map[string]interface{} {
	return map[string]interface{}{
		"document":   "1234567890",
		"first_name": "John",
		"last_name":  "Doe",
		"birth_date": "1990-01-01",
		"email":      "john.doe@example.com",
		"phone":      "3001234567",
		"genre":      "Male",
	}
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return httptest.NewRequest(method, target, &buf)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListPatients_Success(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("List", mock.Anything).Return([]dto.PatientResponse{
		{ID: 1, Document: "1234567890", FirstName: "John", Diagnoses: []dto.AssignedDiagnosis{}},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	patients := body["patients"].([]interface{})
	assert.Len(t, patients, 1)
}

func TestListPatients_StorageFailure(t *testing.T) {
	h, mockUsecase := setupPatientHandler(true)

	mockUsecase.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Failed to fetch the patient list.", body["error"])
	assert.Equal(t, "connection refused", body["details"])
}

func TestListPatients_StorageFailureHidesDetails(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, decodeResponse(t, rec), "details")
}

func TestSearchPatients_ForwardsQuery(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Search", mock.Anything, "doe").Return([]dto.PatientResponse{{ID: 1}}, nil)

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/patients/search?search_query=doe", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertCalled(t, "Search", mock.Anything, "doe")
}

func TestCreatePatient_Success(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Create", mock.Anything, mock.AnythingOfType("*dto.PatientRequest")).Return(&dto.PatientResponse{
		ID:       1,
		Document: "1234567890",
	}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/patients", validPatientBody()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Patient registered successfully.", body["success"])
	patient := body["patient"].(map[string]interface{})
	assert.Equal(t, "1234567890", patient["document"])
}

func TestCreatePatient_MissingFieldFailsValidation(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	payload := validPatientBody()
	delete(payload, "first_name")

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/patients", payload))

	assert.Equal(t, 419, rec.Code)
	body := decodeResponse(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "first_name")
	mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePatient_DuplicateDocumentConflict(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Create", mock.Anything, mock.Anything).Return(nil, usecase.ErrPatientAlreadyRegistered)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/patients", validPatientBody()))

	assert.Equal(t, 419, rec.Code)
	assert.Equal(t, "The patient is already registered.", decodeResponse(t, rec)["error"])
}

func TestCreatePatient_DuplicateEmailFieldError(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Create", mock.Anything, mock.Anything).Return(nil, validator.TakenError("email"))

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(t, http.MethodPost, "/patients", validPatientBody()))

	assert.Equal(t, 419, rec.Code)
	errs := decodeResponse(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
}

func TestUpdatePatient_NotFound(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Update", mock.Anything, uint(99), mock.Anything).Return(nil, usecase.ErrPatientNotFound)

	req := mux.SetURLVars(jsonRequest(t, http.MethodPut, "/patients/99", validPatientBody()), map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, 419, rec.Code)
	assert.Equal(t, "The patient was not found.", decodeResponse(t, rec)["error"])
}

func TestUpdatePatient_NonNumericID(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	req := mux.SetURLVars(jsonRequest(t, http.MethodPut, "/patients/abc", validPatientBody()), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, 419, rec.Code)
	assert.Equal(t, "The patient was not found.", decodeResponse(t, rec)["error"])
	mockUsecase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePatient_Success(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Update", mock.Anything, uint(7), mock.Anything).Return(&dto.PatientResponse{ID: 7, Document: "999"}, nil)

	req := mux.SetURLVars(jsonRequest(t, http.MethodPut, "/patients/7", validPatientBody()), map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Patient information updated.", body["success"])
}

func TestDeletePatient_Success(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Delete", mock.Anything, uint(7)).Return(nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/patients/7", nil), map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient and their diagnoses (if any) deleted successfully.", decodeResponse(t, rec)["success"])
}

func TestDeletePatient_NotFound(t *testing.T) {
	h, mockUsecase := setupPatientHandler(false)

	mockUsecase.On("Delete", mock.Anything, uint(99)).Return(usecase.ErrPatientNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/patients/99", nil), map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, 419, rec.Code)
	assert.Equal(t, "The patient was not found.", decodeResponse(t, rec)["error"])
}
