package converter

import (
	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/domain/entity"
)

func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:          diagnosis.ID,
		Name:        diagnosis.Name,
		Description: diagnosis.Description,
	}
}

// TopDiagnosesToResponses drops the aggregation count: the contract
// returns only name and description.
func TopDiagnosesToResponses(rows []entity.TopDiagnosis) []dto.TopDiagnosisResponse {
	responses := make([]dto.TopDiagnosisResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.TopDiagnosisResponse{
			Name:        row.Name,
			Description: row.Description,
		})
	}
	return responses
}
