package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var notifications []models.Notification
	if err := db.DB.Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}

	return c.JSON(notifications)
}

// MarkNotificationRead flips the read flag on one of the caller's own
// notifications.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var notification models.Notification
	if err := db.DB.Where("recipient_id = ?", userID).First(&notification, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	notification.IsRead = true
	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to mark notification as read",
			Error:   err.Error(),
		})
	}

	return c.JSON(notification)
}
