package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("database init failed: ", err)
	}

	username := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if username == "" {
		username = "admin"
	}
	password := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if password == "" {
		password = "admin123"
	}

	var count int64
	db.DB.Model(&db.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		fmt.Printf("user %s already exists, nothing to do\n", username)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("password hash failed: ", err)
	}

	if err := db.DB.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		log.Fatal("create user failed: ", err)
	}

	fmt.Println("admin account created")
	fmt.Printf("username: %s\n", username)
	fmt.Printf("password: %s\n", password)
}
