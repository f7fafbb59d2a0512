package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"
	"backend/repositories"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv pulls in .env when present. Missing files are fine in
// production where the environment is set externally.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
}

// InitStore builds the repository set. STORE_DRIVER=memory runs without a
// database; anything else connects to Postgres and migrates the schema.
func InitStore() *repositories.Store {
	if os.Getenv("STORE_DRIVER") == "memory" {
		log.Println("using in-memory store; data will not survive a restart")
		return repositories.NewMemoryStore()
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.GlucoseReading{},
		&models.MealPlan{},
		&models.Note{},
		&models.Alert{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return repositories.NewPgStore(db)
}
