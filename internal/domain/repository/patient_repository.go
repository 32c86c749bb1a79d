package repository

import (
	"context"

	"hospital-patient-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	// FindByIDWithDiagnoses eagerly loads the association rows and their
	// diagnosis records.
	FindByIDWithDiagnoses(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindAllWithDiagnoses(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	// Search matches a substring against first_name, last_name or document.
	Search(ctx context.Context, db *gorm.DB, query string) ([]entity.Patient, error)
	// FindByDocument and FindByEmail skip the record with excludeID so
	// updates can re-submit their own unique values. Pass 0 on create.
	FindByDocument(ctx context.Context, db *gorm.DB, document string, excludeID uint) (*entity.Patient, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string, excludeID uint) (*entity.Patient, error)
}
