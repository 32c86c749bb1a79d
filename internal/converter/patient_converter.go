package converter

import (
	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/domain/entity"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// PatientToResponse converts a Patient entity without touching its
// association set. Used by create, update and search, where diagnoses are
// not loaded and must stay absent from the payload.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Document:  patient.Document,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		BirthDate: patient.BirthDate.Format(dateLayout),
		Email:     patient.Email,
		Phone:     patient.Phone,
		Genre:     patient.Genre,
	}
}

// PatientWithDiagnosesToResponse converts an eagerly loaded patient. A
// patient with no assignments serializes "diagnoses" as an empty array,
// not null.
func PatientWithDiagnosesToResponse(patient *entity.Patient) *dto.PatientResponse {
	resp := PatientToResponse(patient)
	if resp == nil {
		return nil
	}

	resp.Diagnoses = make([]dto.AssignedDiagnosis, 0, len(patient.Diagnoses))
	for _, assignment := range patient.Diagnoses {
		resp.Diagnoses = append(resp.Diagnoses, dto.AssignedDiagnosis{
			ID:          assignment.Diagnosis.ID,
			Name:        assignment.Diagnosis.Name,
			Description: assignment.Diagnosis.Description,
			Pivot: dto.PivotResponse{
				PatientID:    assignment.PatientID,
				DiagnosisID:  assignment.DiagnosisID,
				Observation:  assignment.Observation,
				CreationDate: assignment.CreationDate.Format(dateTimeLayout),
			},
		})
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient, withDiagnoses bool) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		var resp *dto.PatientResponse
		if withDiagnoses {
			resp = PatientWithDiagnosesToResponse(&patients[i])
		} else {
			resp = PatientToResponse(&patients[i])
		}
		responses = append(responses, *resp)
	}
	return responses
}
