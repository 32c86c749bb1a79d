package repository

import (
	"context"

	"hospital-patient-api/internal/domain/entity"
	domainRepo "hospital-patient-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientDiagnosisRepository struct{}

func NewPatientDiagnosisRepository() domainRepo.PatientDiagnosisRepository {
	return &patientDiagnosisRepository{}
}

func (r *patientDiagnosisRepository) Create(ctx context.Context, db *gorm.DB, assignment *entity.PatientDiagnosis) error {
	return db.WithContext(ctx).Create(assignment).Error
}

func (r *patientDiagnosisRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID uint) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.PatientDiagnosis{}).Error
}

func (r *patientDiagnosisRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.PatientDiagnosis{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}
