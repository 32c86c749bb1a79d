package entity

import "time"

// Diagnosis is a catalog entry. Immutable through the API once created.
type Diagnosis struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

// TopDiagnosis is the aggregation row for the most assigned diagnoses
// within a time window.
type TopDiagnosis struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int64  `json:"count"`
}
