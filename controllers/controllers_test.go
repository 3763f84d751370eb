package controllers

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
)

var testDBSeq int64

// setupTestDB points the global connection at a fresh in-memory database.
// With no entities given it migrates the full schema.
func setupTestDB(t *testing.T, entities ...interface{}) {
	t.Helper()

	dsn := fmt.Sprintf("file:ctrltest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if len(entities) == 0 {
		entities = []interface{}{
			&models.User{},
			&models.ClientProfile{},
			&models.LawyerProfile{},
			&models.Booking{},
			&models.Consultation{},
			&models.Notification{},
			&models.Review{},
		}
	}
	if err := gdb.AutoMigrate(entities...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
}

// withLocals stands in for the auth and role middleware chain.
func withLocals(userID uint, role models.Role, profileID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("role", role)
		c.Locals("profileID", profileID)
		return c.Next()
	}
}
