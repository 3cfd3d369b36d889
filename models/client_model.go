package models

import (
	"fiber-tracker/controllers/idgen"

	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	ID        int64  `json:"id" gorm:"primary_key"`
	Name      string `json:"name" gorm:"unique;not null"`
	Email     string `json:"email"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = idgen.GenerateID()
	return
}
