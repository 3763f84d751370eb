package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating         float64       `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment        string        `json:"comment"`
	ClientID       uint          `json:"client_id"`
	Client         ClientProfile `json:"client" gorm:"foreignKey:ClientID"`
	LawyerID       uint          `json:"lawyer_id"`
	Lawyer         LawyerProfile `json:"lawyer" gorm:"foreignKey:LawyerID"`
	ConsultationID uint          `json:"consultation_id"`
	Consultation   Consultation  `json:"consultation,omitempty" gorm:"foreignKey:ConsultationID"`
}

// BeforeCreate clamps the rating into the 1.0–5.0 range.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}
