package entity

import "time"

// Patient represents a registered hospital patient.
//
// created_at/updated_at are audit-only and never serialized.
type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Document  string    `gorm:"type:varchar(20);uniqueIndex:patients_document_unique;not null" json:"document"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"last_name"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:patients_email_unique;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Genre     string    `gorm:"type:varchar(10);not null" json:"genre"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`

	// Relationships
	Diagnoses []PatientDiagnosis `gorm:"foreignKey:PatientID" json:"diagnoses,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Genre constants
const (
	GenreMale   = "Male"
	GenreFemale = "Female"
)
