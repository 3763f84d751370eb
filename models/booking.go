package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

// Booking is the account-to-account appointment request. It predates
// Consultation and the two lifecycles are kept separate on purpose.
type Booking struct {
	gorm.Model
	ClientID            uint          `json:"client_id"`
	Client              User          `json:"client" gorm:"foreignKey:ClientID"`
	LawyerID            uint          `json:"lawyer_id"`
	Lawyer              User          `json:"lawyer" gorm:"foreignKey:LawyerID"`
	AppointmentDateTime time.Time     `json:"appointment_date_time"`
	Status              BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	b.Status = BookingPending
	return nil
}

// ValidBookingStatus reports whether s is an accepted target for a lawyer
// status update. "pending" is the initial state only, never a target.
func ValidBookingStatus(s BookingStatus) bool {
	return s == BookingConfirmed || s == BookingCanceled
}
