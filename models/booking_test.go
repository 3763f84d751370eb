package models

import (
	"testing"
)

func TestBookingStartsPending(t *testing.T) {
	// Whatever status the request carried, a new booking starts pending
	booking := Booking{Status: BookingConfirmed}
	if err := booking.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate failed: %v", err)
	}
	if booking.Status != BookingPending {
		t.Errorf("new booking status got = %q, want %q", booking.Status, BookingPending)
	}
}

func TestValidBookingStatus(t *testing.T) {
	if !ValidBookingStatus(BookingConfirmed) {
		t.Error("confirmed should be a valid target")
	}
	if !ValidBookingStatus(BookingCanceled) {
		t.Error("canceled should be a valid target")
	}

	for _, s := range []BookingStatus{BookingPending, "", "done", "Confirmed"} {
		if ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = true, want false", s)
		}
	}
}
