// scripts/create_admin.go
// Seeds the admin account. Admins are never created through the public API.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/planify-app/planify-backend/config"
	"github.com/planify-app/planify-backend/database"
	"github.com/planify-app/planify-backend/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@planify.local")
	password := envOr("ADMIN_PASSWORD", "changeme")

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("admin user already exists:", username)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		FirstName:     "Planify",
		LastName:      "Admin",
		Username:      username,
		Email:         email,
		ContactNumber: "00000000000",
		PasswordHash:  string(hashed),
		Role:          models.RoleAdmin,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created:", username)
	fmt.Println("remember to change the default password")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
