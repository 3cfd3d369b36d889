package models

import (
	"fiber-tracker/controllers/idgen"

	"gorm.io/gorm"
)

// Inbound product lifecycle. A serialized unit enters as IN and is flipped
// to OUT exactly once, when it is moved onto an outbound shipment.
const (
	StatusIn  = "IN"
	StatusOut = "OUT"
)

type InboundHeader struct {
	gorm.Model
	ID           int64  `json:"id" gorm:"primary_key"`
	InboundNo    string `json:"inbound_no" gorm:"index"`
	ClientName   string `json:"client_name"`
	Description  string `json:"description"`
	IsSubscribed bool   `json:"is_subscribed"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	// Relations
	Products []InboundProduct `gorm:"foreignKey:InboundId;references:ID;constraint:OnDelete:CASCADE" json:"products"`
}

func (u *InboundHeader) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = idgen.GenerateID()
	return
}

type InboundProduct struct {
	gorm.Model
	ID           int64  `json:"id" gorm:"primary_key"`
	InboundId    int64  `json:"inbound_id" gorm:"not null;index"`
	Product      string `json:"product"`
	SerialNumber string `json:"serialnumber" gorm:"uniqueIndex;not null"`
	Value        string `json:"value"`
	Barcode      string `json:"barcode"`
	Status       string `json:"status" gorm:"default:'IN'"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

func (u *InboundProduct) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = idgen.GenerateID()
	return
}
