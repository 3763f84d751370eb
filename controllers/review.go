package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

// CreateReview adds a review against a consultation the caller took part in.
// The reviewed lawyer is always derived from the consultation row, so a client
// cannot attribute a review to an arbitrary lawyer.
func CreateReview(c *fiber.Ctx) error {
	profileID := c.Locals("profileID").(uint)

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if review.ConsultationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "consultation_id is required",
		})
	}

	var consultation models.Consultation
	if err := db.DB.Where("client_id = ?", profileID).
		First(&consultation, review.ConsultationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	review.ClientID = profileID
	review.LawyerID = consultation.LawyerID
	review.Consultation = models.Consultation{}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetReviews lists all reviews. Reads are unrestricted.
func GetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := db.DB.Preload("Client.User").Preload("Lawyer.User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}

	for i := range reviews {
		reviews[i].Client.User.Password = ""
		reviews[i].Lawyer.User.Password = ""
	}

	return c.JSON(reviews)
}

// UpdateReview edits one of the caller's own reviews. The client_id scope
// below compares ClientProfile IDs, so the caller's role must be checked
// first: a lawyer's profile ID lives in a different sequence and could
// collide with a client's.
func UpdateReview(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	if role != models.RoleClient {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	var review models.Review
	if err := db.DB.Where("client_id = ?", profileID).First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	type ReviewInput struct {
		Rating  *float64 `json:"rating"`
		Comment *string  `json:"comment"`
	}

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if input.Rating != nil {
		rating := *input.Rating
		if rating < 1.0 {
			rating = 1.0
		} else if rating > 5.0 {
			rating = 5.0
		}
		review.Rating = rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update review",
			Error:   err.Error(),
		})
	}

	return c.JSON(review)
}

// DeleteReview removes one of the caller's own reviews.
func DeleteReview(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	if role != models.RoleClient {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	var review models.Review
	if err := db.DB.Where("client_id = ?", profileID).First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete review",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
