package database

import (
	"fiber-tracker/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Client{},
		&models.Product{},
		&models.InboundHeader{},
		&models.InboundProduct{},
		&models.OutboundHeader{},
		&models.OutboundProduct{},
	)
}
