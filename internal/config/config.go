package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig bundles the runtime configuration for the server and scripts.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	UploadDir         string
	UploadURLPath     string
	SuperRootUserName string
	SuperRootPassword string
	SiteBaseURL       string
	Mail              MailConfig
}

// MailConfig carries the SMTP credentials and addresses used for transactional
// notifications. Empty Username or Password means outbound mail is disabled
// and sends are skipped instead of attempted.
type MailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromEmail  string
	AdminEmail string
}

// Configured reports whether outbound mail credentials are present.
func (m MailConfig) Configured() bool {
	return strings.TrimSpace(m.Username) != "" && strings.TrimSpace(m.Password) != ""
}

// Load reads the application configuration from environment variables and
// fills in safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "mwasawell.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "mwasawell-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://mwasawellbeingservices.com"
	}

	superRootUserName := strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME"))
	superRootPassword := strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD"))

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		UploadDir:         uploadDir,
		UploadURLPath:     uploadURLPath,
		SuperRootUserName: superRootUserName,
		SuperRootPassword: superRootPassword,
		SiteBaseURL:       siteBaseURL,
		Mail:              loadMail(),
	}
}

func loadMail() MailConfig {
	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("EMAIL_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			smtpPort = parsed
		}
	}

	fromEmail := strings.TrimSpace(os.Getenv("DEFAULT_FROM_EMAIL"))
	if fromEmail == "" {
		fromEmail = "noreply@mwasawellbeingservices.com"
	}

	adminEmail := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	if adminEmail == "" {
		adminEmail = fromEmail
	}

	return MailConfig{
		Host:       strings.TrimSpace(os.Getenv("EMAIL_HOST")),
		Port:       smtpPort,
		Username:   strings.TrimSpace(os.Getenv("EMAIL_HOST_USER")),
		Password:   strings.TrimSpace(os.Getenv("EMAIL_HOST_PASSWORD")),
		FromEmail:  fromEmail,
		AdminEmail: adminEmail,
	}
}
