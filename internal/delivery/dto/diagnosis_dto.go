package dto

type DiagnosisRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

type DiagnosisResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssignDiagnosisRequest attaches an existing diagnosis to a patient.
// diagnosis_date is the clinical date, not the insert timestamp.
type AssignDiagnosisRequest struct {
	DiagnosisID   uint   `json:"diagnosis_id" validate:"required"`
	Observation   string `json:"observation" validate:"omitempty,max=255"`
	DiagnosisDate string `json:"diagnosis_date" validate:"required,datetime=2006-01-02"`
}

type TopDiagnosisResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
