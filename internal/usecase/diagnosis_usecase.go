package usecase

import (
	"context"
	"time"

	"hospital-patient-api/internal/converter"
	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/domain/entity"
	"hospital-patient-api/internal/domain/repository"
	"hospital-patient-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	topDiagnosesWindowMonths = 6
	topDiagnosesLimit        = 5
)

type DiagnosisUsecase interface {
	Create(ctx context.Context, req *dto.DiagnosisRequest) (*dto.DiagnosisResponse, error)
	Assign(ctx context.Context, patientID uint, req *dto.AssignDiagnosisRequest) (*dto.PatientResponse, error)
	TopDiagnoses(ctx context.Context) ([]dto.TopDiagnosisResponse, error)
}

type diagnosisUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	patientRepo          repository.PatientRepository
	diagnosisRepo        repository.DiagnosisRepository
	patientDiagnosisRepo repository.PatientDiagnosisRepository
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	diagnosisRepo repository.DiagnosisRepository,
	patientDiagnosisRepo repository.PatientDiagnosisRepository,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:                   db,
		log:                  log,
		patientRepo:          patientRepo,
		diagnosisRepo:        diagnosisRepo,
		patientDiagnosisRepo: patientDiagnosisRepo,
	}
}

func (u *diagnosisUsecase) Create(ctx context.Context, req *dto.DiagnosisRequest) (*dto.DiagnosisResponse, error) {
	diagnosis := &entity.Diagnosis{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.diagnosisRepo.Create(ctx, u.db, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

// Assign inserts a new association row. Duplicate (patient, diagnosis)
// pairs are allowed: every call creates a fresh row.
func (u *diagnosisUsecase) Assign(ctx context.Context, patientID uint, req *dto.AssignDiagnosisRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	diagnosis, err := u.diagnosisRepo.FindByID(ctx, u.db, req.DiagnosisID)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, validator.InvalidSelectionError("diagnosis_id")
	}

	diagnosisDate, err := time.Parse(dateLayout, req.DiagnosisDate)
	if err != nil {
		return nil, validator.FieldErrors{"diagnosis_date": {"The diagnosis date is not a valid date."}}
	}

	assignment := &entity.PatientDiagnosis{
		PatientID:    patient.ID,
		DiagnosisID:  diagnosis.ID,
		Observation:  req.Observation,
		CreationDate: diagnosisDate,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientDiagnosisRepo.Create(ctx, tx, assignment); err != nil {
		if isForeignKeyError(err, "diagnosis_id") {
			return nil, validator.InvalidSelectionError("diagnosis_id")
		}
		if isForeignKeyError(err, "patient_id") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to assign diagnosis: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	updated, err := u.patientRepo.FindByIDWithDiagnoses(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to reload patient: %+v", err)
		return nil, err
	}

	return converter.PatientWithDiagnosesToResponse(updated), nil
}

func (u *diagnosisUsecase) TopDiagnoses(ctx context.Context) ([]dto.TopDiagnosisResponse, error) {
	since := time.Now().AddDate(0, -topDiagnosesWindowMonths, 0)

	rows, err := u.diagnosisRepo.TopAssigned(ctx, u.db, since, topDiagnosesLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch top diagnoses: %+v", err)
		return nil, err
	}

	return converter.TopDiagnosesToResponses(rows), nil
}
