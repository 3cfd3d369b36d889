package database

import (
	"log"

	"fiber-tracker/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUserMaster(db)
	SeedClients(db)
}

func SeedUserMaster(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash seed password: %v", err)
			}
			user := models.User{
				Username: "admin",
				Password: string(hashed),
				Name:     "Administrator",
				Email:    "admin@localhost",
				Role:     "admin",
			}
			db.Create(&user)
		}
	}
}

func SeedClients(db *gorm.DB) {
	clients := []models.Client{
		{Name: "Walk In"},
	}

	for _, c := range clients {
		var existing models.Client
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
