package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-patient-api/internal/converter"
	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/domain/entity"
	"hospital-patient-api/internal/domain/repository"
	"hospital-patient-api/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound          = errors.New("patient not found")
	ErrPatientAlreadyRegistered = errors.New("patient already registered")
)

const dateLayout = "2006-01-02"

type PatientUsecase interface {
	List(ctx context.Context) ([]dto.PatientResponse, error)
	Search(ctx context.Context, query string) ([]dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	patientRepo          repository.PatientRepository
	patientDiagnosisRepo repository.PatientDiagnosisRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientDiagnosisRepo repository.PatientDiagnosisRepository,
) PatientUsecase {
	return &patientUsecase{
		db:                   db,
		log:                  log,
		patientRepo:          patientRepo,
		patientDiagnosisRepo: patientDiagnosisRepo,
	}
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAllWithDiagnoses(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients, true), nil
}

func (u *patientUsecase) Search(ctx context.Context, query string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.Search(ctx, u.db, query)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients, false), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, validator.FieldErrors{"birth_date": {"The birth date is not a valid date."}}
	}

	// Friendly pre-checks. Advisory only: two concurrent creates can both
	// pass, the unique constraints below are the real guard.
	existing, err := u.patientRepo.FindByDocument(ctx, u.db, req.Document, 0)
	if err != nil {
		u.log.Warnf("Failed to check document uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientAlreadyRegistered
	}

	existing, err = u.patientRepo.FindByEmail(ctx, u.db, req.Email, 0)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, validator.TakenError("email")
	}

	patient := &entity.Patient{
		Document:  req.Document,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
		Email:     req.Email,
		Phone:     req.Phone,
		Genre:     req.Genre,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "document") {
			return nil, ErrPatientAlreadyRegistered
		}
		if isDuplicateKeyError(err, "email") {
			return nil, validator.TakenError("email")
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, validator.FieldErrors{"birth_date": {"The birth date is not a valid date."}}
	}

	// Uniqueness checks exclude the record itself so an unchanged
	// document or email passes.
	existing, err := u.patientRepo.FindByDocument(ctx, u.db, req.Document, id)
	if err != nil {
		u.log.Warnf("Failed to check document uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, validator.TakenError("document")
	}

	existing, err = u.patientRepo.FindByEmail(ctx, u.db, req.Email, id)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, validator.TakenError("email")
	}

	patient.Document = req.Document
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.BirthDate = birthDate
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.Genre = req.Genre

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "document") {
			return nil, validator.TakenError("document")
		}
		if isDuplicateKeyError(err, "email") {
			return nil, validator.TakenError("email")
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete detaches every diagnosis assignment, then removes the patient
// row. Both steps run in one transaction.
func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	count, err := u.patientDiagnosisRepo.CountByPatientID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to count patient diagnoses: %+v", err)
		return err
	}
	if count > 0 {
		if err := u.patientDiagnosisRepo.DeleteByPatientID(ctx, tx, id); err != nil {
			u.log.Warnf("Failed to detach patient diagnoses: %+v", err)
			return err
		}
	}

	if err := u.patientRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
