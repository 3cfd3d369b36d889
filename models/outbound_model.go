package models

import (
	"fiber-tracker/controllers/idgen"

	"gorm.io/gorm"
)

type OutboundHeader struct {
	gorm.Model
	ID          int64  `json:"id" gorm:"primary_key"`
	OutboundNo  string `json:"outbound_no" gorm:"uniqueIndex"`
	ClientName  string `json:"client_name"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	// Relations
	Products []OutboundProduct `gorm:"foreignKey:OutboundId;references:ID;constraint:OnDelete:CASCADE" json:"products"`
}

func (u *OutboundHeader) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = idgen.GenerateID()
	return
}

type OutboundProduct struct {
	gorm.Model
	ID         int64 `json:"id" gorm:"primary_key"`
	OutboundId int64 `json:"outbound_id" gorm:"not null;index"`
	// OriginInboundId points at the inbound shipment the unit came from,
	// not at the inbound product row. The inbound product persists with
	// status OUT.
	OriginInboundId int64  `json:"origin_inbound_id" gorm:"not null"`
	Product         string `json:"product"`
	SerialNumber    string `json:"serialnumber" gorm:"not null"`
	Value           string `json:"value"`
	Barcode         string `json:"barcode"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}

func (u *OutboundProduct) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = idgen.GenerateID()
	return
}
