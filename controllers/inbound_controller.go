package controllers

import (
	"errors"
	"fmt"
	"strings"

	"fiber-tracker/models"
	"fiber-tracker/repositories"
	"fiber-tracker/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// InboundController handles inbound shipments and the products received
// under them.
type InboundController struct {
	DB      *gorm.DB
	service *services.InboundService
}

func NewInboundController(DB *gorm.DB) *InboundController {
	return &InboundController{
		DB:      DB,
		service: services.NewInboundService(repositories.NewTxRunner(DB)),
	}
}

type InboundForm struct {
	ClientName   string `json:"client_name" validate:"required,min=2,max=15"`
	Description  string `json:"description" validate:"required,min=2,max=20"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type InboundProductForm struct {
	InboundID    int64  `json:"inbound_id" validate:"required"`
	Product      string `json:"product" validate:"required,min=2,max=50"`
	SerialNumber string `json:"serialnumber"`
	Batch        string `json:"batch"`
	Value        string `json:"value"`
}

// CreateInbound creates the header with an empty inbound number, then
// assigns the id-derived formatted number in the same transaction.
func (c *InboundController) CreateInbound(ctx *fiber.Ctx) error {
	var payload InboundForm
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

	inbound := models.InboundHeader{
		ClientName:   client.Name,
		Description:  payload.Description,
		IsSubscribed: payload.IsSubscribed,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inbound).Error; err != nil {
			return err
		}
		// The formatted number encodes the row's own id, so it can only be
		// assigned after the insert.
		inbound.InboundNo = fmt.Sprintf("IN-%06d", inbound.ID)
		return tx.Model(&models.InboundHeader{}).
			Where("id = ?", inbound.ID).
			Update("inbound_no", inbound.InboundNo).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create inbound",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inbound created successfully",
		"data":    inbound,
	})
}

func (c *InboundController) GetAllInbounds(ctx *fiber.Ctx) error {
	search := strings.TrimSpace(ctx.Query("q"))

	var inbounds []models.InboundHeader
	query := c.DB.Order("created_at desc")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(description) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(inbound_no) LIKE ?",
			like, like, like,
		)
	}
	if err := query.Find(&inbounds).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": inbounds})
}

func (c *InboundController) GetInboundByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var inbound models.InboundHeader
	if err := c.DB.Preload("Products").First(&inbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inbound not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": inbound})
}

func (c *InboundController) UpdateInbound(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload InboundForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var inbound models.InboundHeader
	if err := c.DB.First(&inbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inbound not found"})
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

	inbound.ClientName = client.Name
	inbound.Description = payload.Description
	inbound.IsSubscribed = payload.IsSubscribed
	inbound.InboundNo = fmt.Sprintf("IN-%06d", inbound.ID)
	inbound.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&inbound).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inbound updated successfully", "data": inbound})
}

// DeleteInbound removes the shipment and its products in one transaction.
func (c *InboundController) DeleteInbound(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var inbound models.InboundHeader
	if err := c.DB.First(&inbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inbound not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.InboundProduct{}, "inbound_id = ?", inbound.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&inbound).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inbound deleted successfully"})
}

// AddProduct adds one serialized product to the inbound.
func (c *InboundController) AddProduct(ctx *fiber.Ctx) error {
	var payload InboundProductForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := c.service.AddSingleProduct(payload.InboundID, payload.Product, payload.SerialNumber, payload.Value)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product added to inbound successfully",
		"data":    product,
	})
}

// AddBatch adds a whitespace separated batch of serials in one go.
func (c *InboundController) AddBatch(ctx *fiber.Ctx) error {
	var payload InboundProductForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := c.service.AddBatchProducts(payload.InboundID, payload.Product, payload.Batch, payload.Value)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Batch added to inbound successfully",
		"data":    result,
	})
}

// UploadProductsFromExcel imports products from an uploaded xlsx. Expected
// columns: PRODUCT, SERIALNUMBER, VALUE. Rows missing product or serial
// are skipped and only counted.
func (c *InboundController) UploadProductsFromExcel(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	importRows := make([]services.ImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var r services.ImportRow
		if len(row) > 0 {
			r.Product = row[0]
		}
		if len(row) > 1 {
			r.SerialNumber = row[1]
		}
		if len(row) > 2 {
			r.Value = row[2]
		}
		importRows = append(importRows, r)
	}

	result, err := c.service.ImportFromTable(int64(id), importRows)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Imported %d products, skipped %d rows", result.Imported, result.Skipped),
		"data":    result,
	})
}

// UpdateProductItem is a free text correction of product name or serial.
func (c *InboundController) UpdateProductItem(ctx *fiber.Ctx) error {
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

	var item models.InboundProduct
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

func (c *InboundController) GetProductItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.InboundProduct
	if err := c.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": item})
}

// DeleteProductItem hard deletes a received unit regardless of its
// status. Returning a dispatched unit goes through the outbound side.
func (c *InboundController) DeleteProductItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.InboundProduct
	if err := c.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// hard delete
	if err := c.DB.Unscoped().Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}
