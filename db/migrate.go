package db

import (
	"fmt"
	"log"

	"github.com/lawconnect/lawconnect/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.LawyerProfile{},
		&models.Booking{},
		&models.Consultation{},
		&models.Notification{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
