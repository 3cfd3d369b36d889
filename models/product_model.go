package models

import (
	"fiber-tracker/controllers/idgen"

	"gorm.io/gorm"
)

// Product is the catalog entry shown on the product pages. Transfers work on
// serialized inbound/outbound products and never touch this table.
type Product struct {
	gorm.Model
	ID          int64  `json:"id" gorm:"primary_key"`
	Name        string `json:"name" gorm:"not null"`
	Number      string `json:"number"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = idgen.GenerateID()
	return
}
