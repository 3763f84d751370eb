package models

import (
	"fmt"

	"gorm.io/gorm"
)

type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationConfirmed ConsultationStatus = "confirmed"
	ConsultationCanceled  ConsultationStatus = "canceled"
)

type ConsultationMode string

const (
	ModeOnline   ConsultationMode = "online"
	ModeInPerson ConsultationMode = "in_person"
	ModePhone    ConsultationMode = "phone"
)

var (
	ErrInvalidStatus = fmt.Errorf("status must be %q or %q", ConsultationConfirmed, ConsultationCanceled)
	ErrInvalidMode   = fmt.Errorf("mode must be one of %q, %q, %q", ModeOnline, ModeInPerson, ModePhone)
)

// Consultation is the profile-scoped scheduling entity. Date and Time are kept
// as the wire strings ("2006-01-02" / "15:04:05") in varchar columns so they
// round-trip unchanged; native date/time columns come back from the driver as
// time.Time and would reformat on read.
type Consultation struct {
	gorm.Model
	ClientID uint               `json:"client_id"`
	Client   ClientProfile      `json:"client" gorm:"foreignKey:ClientID"`
	LawyerID uint               `json:"lawyer_id"`
	Lawyer   LawyerProfile      `json:"lawyer" gorm:"foreignKey:LawyerID"`
	Date     string             `json:"date" gorm:"type:varchar(10)"`
	Time     string             `json:"time" gorm:"type:varchar(8)"`
	Mode     ConsultationMode   `json:"mode"`
	Status   ConsultationStatus `json:"status"`
}

func (cons *Consultation) BeforeCreate(tx *gorm.DB) error {
	if cons.Status == "" {
		cons.Status = ConsultationPending
	}
	return nil
}

func ValidConsultationMode(m ConsultationMode) bool {
	return m == ModeOnline || m == ModeInPerson || m == ModePhone
}

// UpdateStatus persists the lawyer-driven transition and appends the client's
// notification in the same transaction. Client must be preloaded.
func (cons *Consultation) UpdateStatus(tx *gorm.DB, next ConsultationStatus) error {
	if next != ConsultationConfirmed && next != ConsultationCanceled {
		return ErrInvalidStatus
	}

	cons.Status = next
	if err := tx.Save(cons).Error; err != nil {
		return err
	}

	note := Notification{
		RecipientID: cons.Client.UserID,
		Message:     fmt.Sprintf("Your consultation on %s at %s has been %s.", cons.Date, cons.Time, next),
	}
	return tx.Create(&note).Error
}

// Reschedule moves the consultation to the new slot, forces the status back to
// pending and appends the lawyer's notification in the same transaction. A
// canceled consultation may be rescheduled back to pending. Lawyer must be
// preloaded.
func (cons *Consultation) Reschedule(tx *gorm.DB, date, timeOfDay string) error {
	cons.Date = date
	cons.Time = timeOfDay
	cons.Status = ConsultationPending
	if err := tx.Save(cons).Error; err != nil {
		return err
	}

	note := Notification{
		RecipientID: cons.Lawyer.UserID,
		Message:     fmt.Sprintf("A consultation has been rescheduled to %s at %s.", cons.Date, cons.Time),
	}
	return tx.Create(&note).Error
}
