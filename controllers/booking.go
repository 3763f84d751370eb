package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

// CreateBooking creates an account-to-account appointment request. The client
// is always the caller and the status always starts pending, whatever the
// request body says.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var lawyer models.User
	if err := db.DB.First(&lawyer, booking.LawyerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lawyer not found",
		})
	}

	booking.ClientID = userID
	booking.Status = models.BookingPending

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetClientBookings lists bookings where the caller is the client
func GetClientBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var bookings []models.Booking
	if err := db.DB.Preload("Lawyer").
		Where("client_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Lawyer.Password = ""
	}

	return c.JSON(bookings)
}

// GetLawyerBookings lists bookings where the caller is the lawyer
func GetLawyerBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var bookings []models.Booking
	if err := db.DB.Preload("Client").
		Where("lawyer_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Client.Password = ""
	}

	return c.JSON(bookings)
}

// UpdateBookingStatus lets the booked lawyer confirm or cancel. Any other
// status value is rejected outright and the stored status is left unchanged.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Where("id = ? AND lawyer_id = ?", id, userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !models.ValidBookingStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	booking.Status = input.Status
	if err := db.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking status",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// DeleteBooking removes a booking. Only the client who created it may delete;
// anyone else gets a permission error, not a 404.
func DeleteBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.ClientID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own bookings",
		})
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete booking",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
