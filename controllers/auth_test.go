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

func TestRegisterMaterializesLawyerProfile(t *testing.T) {
	setupTestDB(t)

	app := fiber.New()
	app.Post("/auth/register", Register)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"lee","email":"lee@example.com","password":"secret","is_lawyer":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status got = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var user models.User
	if err := db.DB.Where("email = ?", "lee@example.com").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}

	var profile models.LawyerProfile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("lawyer profile not materialized: %v", err)
	}
}

func TestRegisterRollsBackAccountWhenProfileFails(t *testing.T) {
	// Migrating without the lawyer_profiles table makes the profile insert
	// fail; the account insert must roll back with it.
	setupTestDB(t, &models.User{}, &models.ClientProfile{})

	app := fiber.New()
	app.Post("/auth/register", Register)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"lee","email":"lee@example.com","password":"secret","is_lawyer":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status got = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var count int64
	db.DB.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("user count got = %d, want 0 after rolled-back registration", count)
	}
}
