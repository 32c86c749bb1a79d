package repository

import (
	"context"
	"errors"

	"hospital-patient-api/internal/domain/entity"
	domainRepo "hospital-patient-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.Patient{}, id).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByIDWithDiagnoses(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).
		Preload("Diagnoses.Diagnosis").
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllWithDiagnoses(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Preload("Diagnoses.Diagnosis").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, db *gorm.DB, query string) ([]entity.Patient, error) {
	var patients []entity.Patient
	pattern := "%" + query + "%"
	err := db.WithContext(ctx).
		Where("first_name ILIKE ?", pattern).
		Or("last_name ILIKE ?", pattern).
		Or("document ILIKE ?", pattern).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByDocument(ctx context.Context, db *gorm.DB, document string, excludeID uint) (*entity.Patient, error) {
	return r.findUnique(ctx, db, "document = ?", document, excludeID)
}

func (r *patientRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string, excludeID uint) (*entity.Patient, error) {
	return r.findUnique(ctx, db, "email = ?", email, excludeID)
}

func (r *patientRepository) findUnique(ctx context.Context, db *gorm.DB, cond, value string, excludeID uint) (*entity.Patient, error) {
	var patient entity.Patient
	tx := db.WithContext(ctx).Where(cond, value)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	err := tx.First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
