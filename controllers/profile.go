package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

// GetClientProfile returns the caller's own client profile
func GetClientProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.ClientProfile
	if err := db.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	profile.User.Password = ""

	return c.JSON(profile)
}

// UpdateClientProfile updates the caller's own client profile. Only address
// and city are writable.
func UpdateClientProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type ClientProfileInput struct {
		Address *string `json:"address"`
		City    *string `json:"city"`
	}

	input := new(ClientProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var profile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.City != nil {
		profile.City = *input.City
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update client profile",
			Error:   err.Error(),
		})
	}

	return c.JSON(profile)
}

// GetLawyerProfile returns the caller's own lawyer profile
func GetLawyerProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.LawyerProfile
	if err := db.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lawyer profile not found",
		})
	}

	profile.User.Password = ""

	return c.JSON(profile)
}

// UpdateLawyerProfile updates the caller's own lawyer profile. License number
// and the verified flag are not client-writable.
func UpdateLawyerProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type LawyerProfileInput struct {
		Specialization *string `json:"specialization"`
		Address        *string `json:"address"`
		Experience     *int    `json:"experience"`
		Location       *string `json:"location"`
		City           *string `json:"city"`
	}

	input := new(LawyerProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var profile models.LawyerProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lawyer profile not found",
		})
	}

	if input.Specialization != nil {
		profile.Specialization = *input.Specialization
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Experience != nil {
		profile.Experience = *input.Experience
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.City != nil {
		profile.City = *input.City
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update lawyer profile",
			Error:   err.Error(),
		})
	}

	return c.JSON(profile)
}

// GetAllLawyers returns lawyer profiles for browsing clients, with
// filter, search and ordering query params
func GetAllLawyers(c *fiber.Ctx) error {
	var lawyers []models.LawyerProfile

	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	query := db.DB.Preload("User").Joins("JOIN users ON lawyer_profiles.user_id = users.id")

	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("lawyer_profiles.specialization = ?", specialization)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("lawyer_profiles.city = ?", city)
	}
	if verified := c.Query("verified"); verified != "" {
		query = query.Where("lawyer_profiles.verified = ?", verified == "true")
	}
	if search := c.Query("q"); search != "" {
		searchQuery := fmt.Sprintf("%%%s%%", search)
		query = query.Where(
			"users.username ILIKE ? OR lawyer_profiles.specialization ILIKE ? OR lawyer_profiles.location ILIKE ?",
			searchQuery, searchQuery, searchQuery,
		)
	}

	switch c.Query("ordering") {
	case "experience":
		query = query.Order("lawyer_profiles.experience ASC")
	case "-experience":
		query = query.Order("lawyer_profiles.experience DESC")
	case "specialization":
		query = query.Order("lawyer_profiles.specialization ASC")
	default:
		query = query.Order("lawyer_profiles.created_at DESC")
	}

	if err := query.Limit(limit).Offset(offset).Find(&lawyers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch lawyers",
			Error:   err.Error(),
		})
	}

	for i := range lawyers {
		lawyers[i].User.Password = ""
	}

	var count int64
	db.DB.Model(&models.LawyerProfile{}).Count(&count)

	return c.JSON(fiber.Map{
		"lawyers": lawyers,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetAllClients returns client profiles for browsing lawyers
func GetAllClients(c *fiber.Ctx) error {
	var clients []models.ClientProfile

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	if err := db.DB.Preload("User").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}

	for i := range clients {
		clients[i].User.Password = ""
	}

	var count int64
	db.DB.Model(&models.ClientProfile{}).Count(&count)

	return c.JSON(fiber.Map{
		"clients": clients,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}
