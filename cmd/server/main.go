package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/handler"
	"github.com/mwasawell/internal/router"
	"github.com/mwasawell/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		log.Printf("ensure admin account: %v", err)
	}

	mailer := service.NewSMTPMailer(cfg.Mail)
	notifier := service.NewNotificationService(db.DB, mailer, cfg.Mail)

	api := handler.NewAPI(db.DB, notifier, cfg.UploadDir, cfg.UploadURLPath)
	r := router.SetupRouter(api, cfg.SessionSecret, "web/template/*.html")

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
