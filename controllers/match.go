package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/redis"
	"github.com/lawconnect/lawconnect/utils"
)

const matchCacheTTL = 60 * time.Second

// MatchLawyers returns verified lawyers in the caller's city. Exact-match
// filter only, no ranking. A caller without a client profile gets a domain
// error, not an authorization error.
func MatchLawyers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var clientProfile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&clientProfile).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	cacheKey := "match:" + clientProfile.City
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			var lawyers []models.LawyerProfile
			if json.Unmarshal([]byte(cached), &lawyers) == nil {
				return c.JSON(lawyers)
			}
		}
	}

	var lawyers []models.LawyerProfile
	if err := db.DB.Preload("User").
		Where("city = ? AND verified = ?", clientProfile.City, true).
		Find(&lawyers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch matching lawyers",
			Error:   err.Error(),
		})
	}

	for i := range lawyers {
		lawyers[i].User.Password = ""
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(lawyers); err == nil {
			redis.Client.Set(redis.Ctx, cacheKey, payload, matchCacheTTL)
		}
	}

	return c.JSON(lawyers)
}
