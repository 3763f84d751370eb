package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/utils"
)

var errPastDate = errors.New("consultation date cannot be in the past")

type ConsultationInput struct {
	LawyerID uint                    `json:"lawyer_id"`
	Date     string                  `json:"date"`
	Time     string                  `json:"time"`
	Mode     models.ConsultationMode `json:"mode"`
}

// CreateConsultation books a consultation for the calling client. The
// past-date rule is re-checked inside the write path so it holds at the moment
// of persistence, however long after request parsing that happens.
func CreateConsultation(c *fiber.Ctx) error {
	profileID := c.Locals("profileID").(uint)

	input := new(ConsultationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !models.ValidConsultationMode(input.Mode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": models.ErrInvalidMode.Error(),
		})
	}

	date, err := utils.ParseScheduleDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected format " + utils.DateLayout,
		})
	}
	if _, err := utils.ParseScheduleTime(input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time, expected format " + utils.TimeLayout,
		})
	}

	var lawyer models.LawyerProfile
	if err := db.DB.First(&lawyer, input.LawyerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lawyer profile not found",
		})
	}

	consultation := models.Consultation{
		ClientID: profileID,
		LawyerID: input.LawyerID,
		Date:     input.Date,
		Time:     input.Time,
		Mode:     input.Mode,
		Status:   models.ConsultationPending,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if utils.DateBeforeToday(date) {
			return errPastDate
		}
		return tx.Create(&consultation).Error
	})
	if err != nil {
		if errors.Is(err, errPastDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errPastDate.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create consultation",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(consultation)
}

// GetConsultations lists the caller's consultations, newest first. A caller
// with no profile gets an empty list, never an error.
func GetConsultations(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)

	query := db.DB.Preload("Client.User").Preload("Lawyer.User").Order("created_at DESC")

	switch role {
	case models.RoleClient:
		query = query.Where("client_id = ?", profileID)
	case models.RoleLawyer:
		query = query.Where("lawyer_id = ?", profileID)
	default:
		return c.JSON([]models.Consultation{})
	}

	var consultations []models.Consultation
	if err := query.Find(&consultations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch consultations",
			Error:   err.Error(),
		})
	}

	for i := range consultations {
		consultations[i].Client.User.Password = ""
		consultations[i].Lawyer.User.Password = ""
	}

	return c.JSON(consultations)
}

// GetConsultation retrieves one consultation, visible only to its own client
// or lawyer.
func GetConsultation(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	query := db.DB.Preload("Client.User").Preload("Lawyer.User")

	switch role {
	case models.RoleClient:
		query = query.Where("client_id = ?", profileID)
	case models.RoleLawyer:
		query = query.Where("lawyer_id = ?", profileID)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	var consultation models.Consultation
	if err := query.First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	consultation.Client.User.Password = ""
	consultation.Lawyer.User.Password = ""

	return c.JSON(consultation)
}

// UpdateConsultationStatus lets the booked lawyer confirm or cancel. The
// status write and the client's notification commit in one transaction; the
// email goes out after commit, best effort.
func UpdateConsultationStatus(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	var consultation models.Consultation
	if err := db.DB.Preload("Client.User").Preload("Lawyer.User").First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	// Only the referenced lawyer may transition the status; the consultation's
	// own client is rejected like anyone else.
	if role != models.RoleLawyer || consultation.LawyerID != profileID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only the consultation's lawyer can update its status",
		})
	}

	type StatusInput struct {
		Status models.ConsultationStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return consultation.UpdateStatus(tx, input.Status)
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update consultation status",
			Error:   err.Error(),
		})
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your consultation has been %s.</p>
		<ul>
			<li><strong>Lawyer:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Mode:</strong> %s</li>
		</ul>
		<p>Best regards,<br>The LawConnect Team</p>
	`, consultation.Client.User.Username, consultation.Status,
		consultation.Lawyer.User.Username, consultation.Date, consultation.Time, consultation.Mode)
	if err := utils.SendEmail(consultation.Client.User.Email, "Consultation "+string(consultation.Status), emailBody); err != nil {
		log.Printf("Failed to send status email for consultation %d: %v", consultation.ID, err)
	}

	consultation.Client.User.Password = ""
	consultation.Lawyer.User.Password = ""

	return c.JSON(consultation)
}

// RescheduleConsultation moves the caller's own consultation to a new slot and
// resets it to pending. A consultation that does not exist and one that
// belongs to someone else produce the same 404, so callers cannot probe for
// existence.
func RescheduleConsultation(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	type RescheduleInput struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}

	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	date, err := utils.ParseScheduleDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected format " + utils.DateLayout,
		})
	}
	if _, err := utils.ParseScheduleTime(input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time, expected format " + utils.TimeLayout,
		})
	}

	if role != models.RoleClient {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	var consultation models.Consultation
	if err := db.DB.Preload("Client.User").Preload("Lawyer.User").
		Where("client_id = ?", profileID).
		First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if utils.DateBeforeToday(date) {
			return errPastDate
		}
		return consultation.Reschedule(tx, input.Date, input.Time)
	})
	if err != nil {
		if errors.Is(err, errPastDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errPastDate.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule consultation",
			Error:   err.Error(),
		})
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A consultation has been rescheduled by the client.</p>
		<ul>
			<li><strong>Client:</strong> %s</li>
			<li><strong>New Date:</strong> %s</li>
			<li><strong>New Time:</strong> %s</li>
		</ul>
		<p>The consultation is pending your confirmation again.</p>
		<p>Best regards,<br>The LawConnect Team</p>
	`, consultation.Lawyer.User.Username, consultation.Client.User.Username,
		consultation.Date, consultation.Time)
	if err := utils.SendEmail(consultation.Lawyer.User.Email, "Consultation Rescheduled", emailBody); err != nil {
		log.Printf("Failed to send reschedule email for consultation %d: %v", consultation.ID, err)
	}

	consultation.Client.User.Password = ""
	consultation.Lawyer.User.Password = ""

	return c.JSON(consultation)
}

// UpdateConsultation is the generic field-masked update: a lawyer may change
// only the status, a client only the date and time. Any other supplied field
// is dropped silently.
func UpdateConsultation(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	profileID := c.Locals("profileID").(uint)
	id := c.Params("id")

	type UpdateInput struct {
		Status *models.ConsultationStatus `json:"status"`
		Date   *string                    `json:"date"`
		Time   *string                    `json:"time"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	query := db.DB.Preload("Client.User").Preload("Lawyer.User")
	switch role {
	case models.RoleClient:
		query = query.Where("client_id = ?", profileID)
	case models.RoleLawyer:
		query = query.Where("lawyer_id = ?", profileID)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	var consultation models.Consultation
	if err := query.First(&consultation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Consultation not found",
		})
	}

	changed := false

	if role == models.RoleLawyer && input.Status != nil {
		s := *input.Status
		if s != models.ConsultationPending && s != models.ConsultationConfirmed && s != models.ConsultationCanceled {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
		consultation.Status = s
		changed = true
	}

	if role == models.RoleClient {
		if input.Date != nil {
			date, err := utils.ParseScheduleDate(*input.Date)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid date, expected format " + utils.DateLayout,
				})
			}
			if utils.DateBeforeToday(date) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": errPastDate.Error(),
				})
			}
			consultation.Date = *input.Date
			changed = true
		}
		if input.Time != nil {
			if _, err := utils.ParseScheduleTime(*input.Time); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid time, expected format " + utils.TimeLayout,
				})
			}
			consultation.Time = *input.Time
			changed = true
		}
	}

	if changed {
		if err := db.DB.Save(&consultation).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update consultation",
				Error:   err.Error(),
			})
		}
	}

	consultation.Client.User.Password = ""
	consultation.Lawyer.User.Password = ""

	return c.JSON(consultation)
}
