package repository

import (
	"context"
	"errors"
	"time"

	"hospital-patient-api/internal/domain/entity"
	domainRepo "hospital-patient-api/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.WithContext(ctx).Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.WithContext(ctx).Where("id = ?", id).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) TopAssigned(ctx context.Context, db *gorm.DB, since time.Time, limit int) ([]entity.TopDiagnosis, error) {
	var rows []entity.TopDiagnosis
	err := db.WithContext(ctx).
		Model(&entity.Diagnosis{}).
		Select("diagnoses.name, diagnoses.description, COUNT(patient_diagnosis.diagnosis_id) AS count").
		Joins("JOIN patient_diagnosis ON patient_diagnosis.diagnosis_id = diagnoses.id").
		Where("patient_diagnosis.created_at >= ?", since).
		Group("diagnoses.id, diagnoses.name, diagnoses.description").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
