package db

import (
	"log"
	"os"

	"jokehub/internal/models"
	"jokehub/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=jokehub port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Map duplicate key violations to gorm.ErrDuplicatedKey so the vote
		// handler can treat a lost create race as "already voted".
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Joke{},
		&models.JokeVote{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial categories
	seedCategories()
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	names := []string{"Puns", "Dad Jokes", "One-Liners", "Knock-Knock", "Observational"}
	for _, name := range names {
		category := models.Category{Name: name, Slug: utils.Slugify(name)}
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", name, err)
		}
	}
	log.Println("Initial categories created successfully")
}
