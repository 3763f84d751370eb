package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

// UpdateProfilePicture uploads a picture to Cloudinary and stores the URL on
// whichever profile the caller owns.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(models.Role)

	if role == models.RoleUnresolved {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No profile to attach a picture to",
		})
	}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get profile picture",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())

	secureURL, err := utils.UploadToCloudinary(f, publicID, "profile_pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile picture to Cloudinary",
		})
	}

	var updateErr error
	switch role {
	case models.RoleClient:
		updateErr = db.DB.Model(&models.ClientProfile{}).
			Where("user_id = ?", userID).
			Update("profile_picture", secureURL).Error
	case models.RoleLawyer:
		updateErr = db.DB.Model(&models.LawyerProfile{}).
			Where("user_id = ?", userID).
			Update("profile_picture", secureURL).Error
	}
	if updateErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile picture",
		})
	}

	return c.JSON(fiber.Map{
		"profile_picture": secureURL,
	})
}
