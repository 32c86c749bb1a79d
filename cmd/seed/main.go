// Command seed populates the database with a default login user and a
// set of sample patients, diagnoses and assignments for local development.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"hospital-patient-api/config"
	"hospital-patient-api/internal/domain/entity"
	"hospital-patient-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	logrus.Info("Database seeded successfully")
}

func seed(db *gorm.DB) error {
	if err := seedUser(db); err != nil {
		return err
	}

	patients, err := seedPatients(db)
	if err != nil {
		return err
	}

	return seedDiagnoses(db, patients)
}

func seedUser(db *gorm.DB) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		FullName: "Admin",
		Email:    "admin@hospital.test",
		Password: string(hashedPassword),
	}
	return db.Create(user).Error
}

func seedPatients(db *gorm.DB) ([]entity.Patient, error) {
	firstNames := []string{"John", "Jane", "Carlos", "Maria", "Pedro", "Lucia", "Miguel", "Sofia", "Andres", "Camila"}
	lastNames := []string{"Doe", "Smith", "Garcia", "Lopez", "Martinez", "Torres", "Ramirez", "Vargas", "Castro", "Rojas"}

	patients := make([]entity.Patient, 0, len(firstNames))
	for i, firstName := range firstNames {
		genre := entity.GenreMale
		if i%2 == 1 {
			genre = entity.GenreFemale
		}

		patients = append(patients, entity.Patient{
			Document:  fmt.Sprintf("%010d", 1000000000+rand.Intn(900000000)),
			FirstName: firstName,
			LastName:  lastNames[i],
			BirthDate: time.Date(1950+rand.Intn(55), time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC),
			Email:     fmt.Sprintf("%s.%s%d@example.com", firstName, lastNames[i], i),
			Phone:     fmt.Sprintf("%010d", 3000000000+rand.Intn(999999999)),
			Genre:     genre,
		})
	}

	if err := db.Create(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func seedDiagnoses(db *gorm.DB, patients []entity.Patient) error {
	diagnoses := []entity.Diagnosis{
		{Name: "Type 2 diabetes mellitus", Description: "Chronic condition affecting glucose metabolism"},
		{Name: "Essential hypertension", Description: "Persistently elevated arterial blood pressure"},
		{Name: "Acute bronchitis", Description: "Inflammation of the bronchial tubes"},
		{Name: "Migraine", Description: "Recurrent moderate to severe headache"},
		{Name: "Gastroenteritis", Description: "Inflammation of the stomach and intestines"},
	}

	if err := db.Create(&diagnoses).Error; err != nil {
		return err
	}

	// Attach each diagnosis to 1-3 random patients, dated within the past
	// year so part of the data lands inside the top-diagnoses window.
	for _, diagnosis := range diagnoses {
		for _, idx := range rand.Perm(len(patients))[:1+rand.Intn(3)] {
			assignedAt := time.Now().AddDate(0, 0, -(1 + rand.Intn(365)))
			assignment := entity.PatientDiagnosis{
				PatientID:    patients[idx].ID,
				DiagnosisID:  diagnosis.ID,
				Observation:  fmt.Sprintf("Observed during routine check of %s", patients[idx].FirstName),
				CreationDate: assignedAt,
				CreatedAt:    assignedAt,
			}
			if err := db.Create(&assignment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
