package main

import (
	"fmt"
	"log"

	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/service"
)

// Re-dispatches emails for every booking, contact and subscriber record whose
// notifications never went out. Run it after fixing SMTP credentials.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("database init failed: ", err)
	}

	if !cfg.Mail.Configured() {
		log.Fatal("mail credentials are not configured; set EMAIL_HOST_USER and EMAIL_HOST_PASSWORD first")
	}

	mailer := service.NewSMTPMailer(cfg.Mail)
	notifier := service.NewNotificationService(db.DB, mailer, cfg.Mail)

	attempted, err := notifier.ResendPending()
	if err != nil {
		log.Fatal("resend failed: ", err)
	}

	fmt.Printf("attempted %d pending notification(s)\n", attempted)
}
