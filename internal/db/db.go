package db

import (
	"newsdesk/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Info("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database migration completed")

	seedTopics()
	seedUsers()
}

func seedTopics() {
	var count int64
	DB.Model(&models.Topic{}).Count(&count)
	if count > 0 {
		log.Debug("Topics already seeded, skipping")
		return
	}

	topics := []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}

	for _, topic := range topics {
		if err := DB.Create(&topic).Error; err != nil {
			log.Errorf("Failed to create topic %s: %v", topic.Slug, err)
		}
	}
	log.Info("Initial topics created")
}

func seedUsers() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Debug("Users already seeded, skipping")
		return
	}

	users := []models.User{
		{Username: "tickle122", Name: "Tom Tickle", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/d/d6/Mr-Tickle-9a.png"},
		{Username: "grumpy19", Name: "Paul Grump", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/7/78/Mr-Grumpy-3A.PNG"},
		{Username: "happyamy2016", Name: "Amy Happy", AvatarURL: "https://vignette1.wikia.nocookie.net/mrmen/images/7/7f/Mr_Happy.jpg"},
		{Username: "cooljmessy", Name: "Peter Messy", AvatarURL: "https://vignette.wikia.nocookie.net/mrmen/images/1/1a/MR_MESSY_4A.jpg"},
	}

	for _, user := range users {
		if err := DB.Create(&user).Error; err != nil {
			log.Errorf("Failed to create user %s: %v", user.Username, err)
		}
	}
	log.Info("Initial users created")
}
