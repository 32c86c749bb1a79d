package repository

import (
	"context"
	"time"

	"hospital-patient-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Diagnosis, error)
	// TopAssigned counts association rows created since the given time,
	// grouped per diagnosis, ordered by count descending. Ordering among
	// tied counts is whatever the database returns.
	TopAssigned(ctx context.Context, db *gorm.DB, since time.Time, limit int) ([]entity.TopDiagnosis, error)
}
