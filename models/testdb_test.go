package models

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database per test. The shared-cache name
// keeps all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:modeltest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&User{},
		&ClientProfile{},
		&LawyerProfile{},
		&Booking{},
		&Consultation{},
		&Notification{},
		&Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}
