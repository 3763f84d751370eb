package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lawconnect/lawconnect/db"
	"github.com/lawconnect/lawconnect/models"
	"github.com/lawconnect/lawconnect/redis"
	"github.com/lawconnect/lawconnect/utils"
)

// StartCronJobs initializes and starts the cron scheduler for consultation reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to catch consultations happening tomorrow
	_, err := c.AddFunc("* * * * *", sendConsultationReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for consultation reminders")
}

// sendConsultationReminders checks for confirmed consultations scheduled
// tomorrow and sends one reminder per consultation per day
func sendConsultationReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	var consultations []models.Consultation
	err := db.DB.Preload("Client.User").Preload("Lawyer.User").
		Where("status = ? AND date = ?", models.ConsultationConfirmed, tomorrow).
		Find(&consultations).Error
	if err != nil {
		log.Printf("Error fetching consultations for reminders: %v", err)
		return
	}

	for _, consultation := range consultations {
		// Redis marker dedupes reminders across runs
		marker := fmt.Sprintf("reminder:%d:%s", consultation.ID, tomorrow)
		if redis.Client != nil {
			set, err := redis.Client.SetNX(redis.Ctx, marker, "1", 48*time.Hour).Result()
			if err != nil || !set {
				continue
			}
		}

		if err := sendReminderEmail(&consultation); err != nil {
			log.Printf("Failed to send reminder for consultation %d: %v", consultation.ID, err)
			continue
		}
		log.Printf("Sent reminder for consultation %d to %s", consultation.ID, consultation.Client.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(consultation *models.Consultation) error {
	subject := "Reminder: Upcoming Consultation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your consultation scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Lawyer:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Mode:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, please do so as soon as possible.</p>
		<p>Best regards,<br>The LawConnect Team</p>
	`, consultation.Client.User.Username, consultation.Lawyer.User.Username,
		consultation.Date, consultation.Time, consultation.Mode)

	return utils.SendEmail(consultation.Client.User.Email, subject, body)
}
