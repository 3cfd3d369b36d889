package controllers

import (
	"errors"
	"fmt"

	"fiber-tracker/models"
	"fiber-tracker/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OutboundController handles outbound shipments and the transfer of
// inbound products onto them.
type OutboundController struct {
	DB       *gorm.DB
	transfer *services.TransferService
}

func NewOutboundController(DB *gorm.DB, transfer *services.TransferService) *OutboundController {
	return &OutboundController{DB: DB, transfer: transfer}
}

type OutboundForm struct {
	ClientName  string `json:"client_name" validate:"required,min=2,max=15"`
	Description string `json:"description" validate:"required,min=2,max=20"`
}

type MoveProductForm struct {
	Serial     string `json:"serial"`
	OutboundNo string `json:"outbound_number"`
}

type MoveBatchForm struct {
	Serials    []string `json:"serials"`
	OutboundNo string   `json:"outbound_number"`
}

func (c *OutboundController) CreateOutbound(ctx *fiber.Ctx) error {
	var payload OutboundForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	var client models.Client
	if err := c.DB.First(&client, "name = ?", payload.ClientName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Client does not exist",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	outbound := models.OutboundHeader{
		ClientName:  client.Name,
		Description: payload.Description,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&outbound).Error; err != nil {
			return err
		}
		outbound.OutboundNo = fmt.Sprintf("LC-OUT-%06d", outbound.ID)
		return tx.Model(&models.OutboundHeader{}).
			Where("id = ?", outbound.ID).
			Update("outbound_no", outbound.OutboundNo).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create outbound",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Outbound created successfully",
		"data":    outbound,
	})
}

func (c *OutboundController) GetAllOutbounds(ctx *fiber.Ctx) error {
	var outbounds []models.OutboundHeader
	if err := c.DB.Order("created_at desc").Find(&outbounds).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": outbounds})
}

func (c *OutboundController) GetOutboundByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var outbound models.OutboundHeader
	if err := c.DB.Preload("Products").First(&outbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Outbound not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": outbound})
}

func (c *OutboundController) UpdateOutbound(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload OutboundForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var outbound models.OutboundHeader
	if err := c.DB.First(&outbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Outbound not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var client models.Client
	if err := c.DB.First(&client, "name = ?", payload.ClientName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Client does not exist",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	outbound.ClientName = client.Name
	outbound.Description = payload.Description
	outbound.OutboundNo = fmt.Sprintf("LC-OUT-%06d", outbound.ID)
	outbound.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&outbound).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outbound updated successfully", "data": outbound})
}

// DeleteOutbound removes the shipment and its products in one transaction.
// The inbound products that fed it keep their OUT status; returning units
// goes through DeleteOutboundProduct.
func (c *OutboundController) DeleteOutbound(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var outbound models.OutboundHeader
	if err := c.DB.First(&outbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Outbound not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.OutboundProduct{}, "outbound_id = ?", outbound.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&outbound).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outbound deleted successfully"})
}

// MoveProduct transfers one inbound product onto the outbound identified
// by its number.
func (c *OutboundController) MoveProduct(ctx *fiber.Ctx) error {
	var payload MoveProductForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := c.transfer.TransferSingle(payload.Serial, payload.OutboundNo)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product moved to outbound successfully",
		"data":    product,
	})
}

// MoveBatch transfers a list of serials and reports per-serial outcomes.
func (c *OutboundController) MoveBatch(ctx *fiber.Ctx) error {
	var payload MoveBatchForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := c.transfer.TransferBatch(payload.Serials, payload.OutboundNo)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{
		"success": result.Success,
		"data":    result,
	})
}

// DeleteOutboundProduct removes a dispatched unit and makes the source
// inbound product available again.
func (c *OutboundController) DeleteOutboundProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.transfer.ReturnProduct(int64(id)); err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outbound product deleted successfully"})
}

// UpdateOutboundProduct is a free text correction of product name or
// serial on a dispatched unit.
func (c *OutboundController) UpdateOutboundProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload struct {
		Product      string `json:"product"`
		SerialNumber string `json:"serialnumber"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.OutboundProduct
	if err := c.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if payload.Product != "" {
		item.Product = payload.Product
	}
	if payload.SerialNumber != "" {
		item.SerialNumber = payload.SerialNumber
	}
	item.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": item})
}
