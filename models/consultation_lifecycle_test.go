package models

import (
	"strings"
	"testing"

	"gorm.io/gorm"
)

func seedConsultation(t *testing.T, gdb *gorm.DB, status ConsultationStatus) *Consultation {
	t.Helper()

	clientUser := User{Username: "carla", Email: "carla@example.com", IsClient: true}
	if err := gdb.Create(&clientUser).Error; err != nil {
		t.Fatalf("failed to create client user: %v", err)
	}
	lawyerUser := User{Username: "lee", Email: "lee@example.com", IsLawyer: true}
	if err := gdb.Create(&lawyerUser).Error; err != nil {
		t.Fatalf("failed to create lawyer user: %v", err)
	}

	client := ClientProfile{UserID: clientUser.ID, City: "Austin"}
	if err := gdb.Create(&client).Error; err != nil {
		t.Fatalf("failed to create client profile: %v", err)
	}
	lawyer := LawyerProfile{UserID: lawyerUser.ID, LicenseNumber: "L-100", Verified: true, City: "Austin"}
	if err := gdb.Create(&lawyer).Error; err != nil {
		t.Fatalf("failed to create lawyer profile: %v", err)
	}

	cons := Consultation{
		ClientID: client.ID,
		LawyerID: lawyer.ID,
		Date:     "2099-01-01",
		Time:     "10:00:00",
		Mode:     ModeOnline,
		Status:   status,
	}
	if err := gdb.Create(&cons).Error; err != nil {
		t.Fatalf("failed to create consultation: %v", err)
	}

	var loaded Consultation
	if err := gdb.Preload("Client.User").Preload("Lawyer.User").First(&loaded, cons.ID).Error; err != nil {
		t.Fatalf("failed to reload consultation: %v", err)
	}
	return &loaded
}

func TestUpdateStatusNotifiesClient(t *testing.T) {
	gdb := newTestDB(t)
	cons := seedConsultation(t, gdb, ConsultationPending)

	err := gdb.Transaction(func(tx *gorm.DB) error {
		return cons.UpdateStatus(tx, ConsultationConfirmed)
	})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	var stored Consultation
	if err := gdb.First(&stored, cons.ID).Error; err != nil {
		t.Fatalf("failed to reload consultation: %v", err)
	}
	if stored.Status != ConsultationConfirmed {
		t.Errorf("stored status got = %q, want %q", stored.Status, ConsultationConfirmed)
	}

	var notes []Notification
	if err := gdb.Find(&notes).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("notification count got = %d, want exactly 1", len(notes))
	}
	if notes[0].RecipientID != cons.Client.UserID {
		t.Errorf("notification recipient got = %d, want client user %d", notes[0].RecipientID, cons.Client.UserID)
	}
	if !strings.Contains(notes[0].Message, string(ConsultationConfirmed)) {
		t.Errorf("notification message %q should reference the new status", notes[0].Message)
	}
	if notes[0].IsRead {
		t.Error("new notification should be unread")
	}
}

func TestRescheduleResetsStatusAndNotifiesLawyer(t *testing.T) {
	// Starts from canceled: a canceled consultation may still be rescheduled
	// back to pending.
	gdb := newTestDB(t)
	cons := seedConsultation(t, gdb, ConsultationCanceled)

	err := gdb.Transaction(func(tx *gorm.DB) error {
		return cons.Reschedule(tx, "2099-02-01", "11:00:00")
	})
	if err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}

	var stored Consultation
	if err := gdb.First(&stored, cons.ID).Error; err != nil {
		t.Fatalf("failed to reload consultation: %v", err)
	}
	if stored.Status != ConsultationPending {
		t.Errorf("stored status got = %q, want %q", stored.Status, ConsultationPending)
	}
	if stored.Date != "2099-02-01" {
		t.Errorf("stored date got = %q, want 2099-02-01", stored.Date)
	}
	if stored.Time != "11:00:00" {
		t.Errorf("stored time got = %q, want 11:00:00", stored.Time)
	}

	var notes []Notification
	if err := gdb.Find(&notes).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("notification count got = %d, want exactly 1", len(notes))
	}
	if notes[0].RecipientID != cons.Lawyer.UserID {
		t.Errorf("notification recipient got = %d, want lawyer user %d", notes[0].RecipientID, cons.Lawyer.UserID)
	}
}

func TestUpdateStatusInvalidTargetWritesNothing(t *testing.T) {
	gdb := newTestDB(t)
	cons := seedConsultation(t, gdb, ConsultationPending)

	err := gdb.Transaction(func(tx *gorm.DB) error {
		return cons.UpdateStatus(tx, "completed")
	})
	if err == nil {
		t.Fatal("expected error for invalid target status")
	}

	var stored Consultation
	if err := gdb.First(&stored, cons.ID).Error; err != nil {
		t.Fatalf("failed to reload consultation: %v", err)
	}
	if stored.Status != ConsultationPending {
		t.Errorf("stored status got = %q, want unchanged %q", stored.Status, ConsultationPending)
	}

	var count int64
	gdb.Model(&Notification{}).Count(&count)
	if count != 0 {
		t.Errorf("notification count got = %d, want 0 after rejected transition", count)
	}
}
