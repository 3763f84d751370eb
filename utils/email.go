package utils

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

var envOnce sync.Once

type mailConfig struct {
	host string
	port int
	user string
	pass string
}

func loadMailConfig() mailConfig {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file. Using environment variables directly.")
		}
	})

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	return mailConfig{
		host: os.Getenv("SMTP_HOST"),
		port: port,
		user: os.Getenv("EMAIL_USER"),
		pass: os.Getenv("EMAIL_PASS"),
	}
}

func SendEmail(to, subject, body string) error {
	cfg := loadMailConfig()

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.host, cfg.port, cfg.user, cfg.pass)

	return d.DialAndSend(m)
}
