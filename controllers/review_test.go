package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
)

type reviewFixture struct {
	clientUser    models.User
	lawyerUser    models.User
	clientProfile models.ClientProfile
	lawyerProfile models.LawyerProfile
	review        models.Review
}

func seedReview(t *testing.T) reviewFixture {
	t.Helper()

	fx := reviewFixture{
		clientUser: models.User{Username: "carla", Email: "carla@example.com", IsClient: true},
		lawyerUser: models.User{Username: "lee", Email: "lee@example.com", IsLawyer: true},
	}
	if err := db.DB.Create(&fx.clientUser).Error; err != nil {
		t.Fatalf("failed to create client user: %v", err)
	}
	if err := db.DB.Create(&fx.lawyerUser).Error; err != nil {
		t.Fatalf("failed to create lawyer user: %v", err)
	}

	fx.clientProfile = models.ClientProfile{UserID: fx.clientUser.ID, City: "Austin"}
	if err := db.DB.Create(&fx.clientProfile).Error; err != nil {
		t.Fatalf("failed to create client profile: %v", err)
	}
	fx.lawyerProfile = models.LawyerProfile{UserID: fx.lawyerUser.ID, LicenseNumber: "L-100", Verified: true, City: "Austin"}
	if err := db.DB.Create(&fx.lawyerProfile).Error; err != nil {
		t.Fatalf("failed to create lawyer profile: %v", err)
	}

	// Both profile tables start their sequences at 1, so the two profile IDs
	// collide. Review ownership checks compare ClientProfile IDs and must not
	// let a lawyer profile with the same number through.
	if fx.clientProfile.ID != fx.lawyerProfile.ID {
		t.Fatalf("expected colliding profile IDs, got client %d and lawyer %d",
			fx.clientProfile.ID, fx.lawyerProfile.ID)
	}

	cons := models.Consultation{
		ClientID: fx.clientProfile.ID,
		LawyerID: fx.lawyerProfile.ID,
		Date:     "2099-01-01",
		Time:     "10:00:00",
		Mode:     models.ModeOnline,
		Status:   models.ConsultationConfirmed,
	}
	if err := db.DB.Create(&cons).Error; err != nil {
		t.Fatalf("failed to create consultation: %v", err)
	}

	fx.review = models.Review{
		Rating:         4.0,
		Comment:        "very helpful",
		ClientID:       fx.clientProfile.ID,
		LawyerID:       fx.lawyerProfile.ID,
		ConsultationID: cons.ID,
	}
	if err := db.DB.Create(&fx.review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	return fx
}

func TestUpdateReviewRejectsLawyerCaller(t *testing.T) {
	setupTestDB(t)
	fx := seedReview(t)

	app := fiber.New()
	app.Patch("/reviews/:id",
		withLocals(fx.lawyerUser.ID, models.RoleLawyer, fx.lawyerProfile.ID),
		UpdateReview)

	req := httptest.NewRequest(http.MethodPatch, "/reviews/1", strings.NewReader(`{"comment":"rewritten"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status got = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	var stored models.Review
	if err := db.DB.First(&stored, fx.review.ID).Error; err != nil {
		t.Fatalf("failed to reload review: %v", err)
	}
	if stored.Comment != "very helpful" {
		t.Errorf("comment got = %q, want unchanged", stored.Comment)
	}
}

func TestDeleteReviewRejectsLawyerCaller(t *testing.T) {
	setupTestDB(t)
	fx := seedReview(t)

	app := fiber.New()
	app.Delete("/reviews/:id",
		withLocals(fx.lawyerUser.ID, models.RoleLawyer, fx.lawyerProfile.ID),
		DeleteReview)

	req := httptest.NewRequest(http.MethodDelete, "/reviews/1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status got = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	var count int64
	db.DB.Model(&models.Review{}).Count(&count)
	if count != 1 {
		t.Errorf("review count got = %d, want 1 (nothing deleted)", count)
	}
}

func TestUpdateReviewAllowsOwningClient(t *testing.T) {
	setupTestDB(t)
	fx := seedReview(t)

	app := fiber.New()
	app.Patch("/reviews/:id",
		withLocals(fx.clientUser.ID, models.RoleClient, fx.clientProfile.ID),
		UpdateReview)

	req := httptest.NewRequest(http.MethodPatch, "/reviews/1", strings.NewReader(`{"comment":"updated by owner"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status got = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var stored models.Review
	if err := db.DB.First(&stored, fx.review.ID).Error; err != nil {
		t.Fatalf("failed to reload review: %v", err)
	}
	if stored.Comment != "updated by owner" {
		t.Errorf("comment got = %q, want updated by owner", stored.Comment)
	}
}
