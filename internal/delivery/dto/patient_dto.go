package dto

// PatientRequest carries the full patient record. Create and update share
// it: updates are full replacements, every field is required each time.
//
// document and phone are digit strings, 1 to 20 digits.
type PatientRequest struct {
	Document  string `json:"document" validate:"required,numeric,max=20"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,numeric,max=20"`
	Genre     string `json:"genre" validate:"required,oneof=Male Female"`
}

// PatientResponse mirrors the patient record. Diagnoses is only present
// on operations that eagerly load the association set.
type PatientResponse struct {
	ID        uint                `json:"id"`
	Document  string              `json:"document"`
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	BirthDate string              `json:"birth_date"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Genre     string              `json:"genre"`
	Diagnoses []AssignedDiagnosis `json:"diagnoses,omitempty"`
}

// AssignedDiagnosis is a diagnosis nested under a patient together with
// the pivot attributes of that particular assignment.
type AssignedDiagnosis struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Pivot       PivotResponse `json:"pivot"`
}

type PivotResponse struct {
	PatientID    uint   `json:"patient_id"`
	DiagnosisID  uint   `json:"diagnosis_id"`
	Observation  string `json:"observation"`
	CreationDate string `json:"creation_date"`
}
