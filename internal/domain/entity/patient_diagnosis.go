package entity

import "time"

// PatientDiagnosis is a row in the patient_diagnosis join table. The pair
// (patient_id, diagnosis_id) carries no uniqueness constraint: assigning
// the same diagnosis twice creates two rows.
//
// CreationDate is the clinically relevant diagnosis date supplied by the
// client; CreatedAt is the technical insert timestamp and drives the
// top-diagnoses window.
type PatientDiagnosis struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DiagnosisID  uint      `gorm:"not null;index" json:"diagnosis_id"`
	Observation  string    `gorm:"type:varchar(255)" json:"observation"`
	CreationDate time.Time `gorm:"not null" json:"creation_date"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Diagnosis Diagnosis `gorm:"foreignKey:DiagnosisID" json:"diagnosis,omitempty"`
}

func (PatientDiagnosis) TableName() string {
	return "patient_diagnosis"
}
