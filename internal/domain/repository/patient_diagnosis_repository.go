package repository

import (
	"context"

	"hospital-patient-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientDiagnosisRepository interface {
	Create(ctx context.Context, db *gorm.DB, assignment *entity.PatientDiagnosis) error
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID uint) error
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error)
}
