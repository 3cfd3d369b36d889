package services

import (
	"strings"

	"fiber-tracker/logger"
	"fiber-tracker/models"
	"fiber-tracker/utils"
)

// InboundService adds serialized products to an inbound shipment: one at a
// time, as a pasted batch of serials, or imported from spreadsheet rows.
type InboundService struct {
	tx TxRunner

	Barcode func() string
}

func NewInboundService(tx TxRunner) *InboundService {
	return &InboundService{
		tx:      tx,
		Barcode: utils.GenerateBarcode,
	}
}

// NormalizeSerials splits a pasted batch on any whitespace, trims the
// entries, drops empties and collapses duplicates while keeping the first
// occurrence's position.
func NormalizeSerials(batch string) []string {
	fields := strings.Fields(batch)
	seen := make(map[string]bool, len(fields))
	serials := make([]string, 0, len(fields))
	for _, serial := range fields {
		if seen[serial] {
			continue
		}
		seen[serial] = true
		serials = append(serials, serial)
	}
	return serials
}

// BatchAddResult reports how a batch add or spreadsheet import went.
type BatchAddResult struct {
	Created int      `json:"created"`
	Skipped []string `json:"skipped"`
}

// ImportRow is one spreadsheet row handed over by the upload handler.
type ImportRow struct {
	Product      string `json:"product"`
	SerialNumber string `json:"serialnumber"`
	Value        string `json:"value"`
}

// ImportResult counts spreadsheet rows that became inbound products versus
// rows dropped for missing fields or duplicate serials.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// AddSingleProduct creates one inbound product with a fresh barcode and
// status IN. Serial numbers are globally unique across inbound products.
func (s *InboundService) AddSingleProduct(inboundID int64, product, serial, value string) (*models.InboundProduct, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, &InvalidInputError{Reason: "serial number is required"}
	}
	if strings.TrimSpace(product) == "" {
		return nil, &InvalidInputError{Reason: "product is required"}
	}

	var created models.InboundProduct

	err := s.tx.RunTransaction(func(repo Repository) error {
		inbound, err := repo.FindInboundByID(inboundID)
		if err != nil {
			return err
		}
		if inbound == nil {
			return &NotFoundError{Entity: "inbound"}
		}

		existing, err := repo.FindInboundProductBySerial(serial)
		if err != nil {
			return err
		}
		if existing != nil {
			return &DuplicateSerialError{Serial: serial}
		}

		created = models.InboundProduct{
			InboundId:    inboundID,
			Product:      product,
			SerialNumber: serial,
			Value:        value,
			Barcode:      s.Barcode(),
			Status:       models.StatusIn,
		}
		return repo.CreateInboundProduct(&created)
	})
	if err != nil {
		return nil, classify(err)
	}

	return &created, nil
}

// AddBatchProducts creates an inbound product for every serial in the batch
// that does not exist yet. Serials already in the store are reported as
// skipped; when nothing is new the whole batch fails with ErrAllDuplicates.
func (s *InboundService) AddBatchProducts(inboundID int64, product, batch, value string) (*BatchAddResult, error) {
	serials := NormalizeSerials(batch)
	if len(serials) == 0 {
		return nil, &InvalidInputError{Reason: "at least one serial number is required"}
	}
	if strings.TrimSpace(product) == "" {
		return nil, &InvalidInputError{Reason: "product is required"}
	}

	result := &BatchAddResult{}

	err := s.tx.RunTransaction(func(repo Repository) error {
		inbound, err := repo.FindInboundByID(inboundID)
		if err != nil {
			return err
		}
		if inbound == nil {
			return &NotFoundError{Entity: "inbound"}
		}

		existing, err := repo.FindExistingSerials(serials)
		if err != nil {
			return err
		}
		existingSet := make(map[string]bool, len(existing))
		for _, serial := range existing {
			existingSet[serial] = true
		}

		products := make([]models.InboundProduct, 0, len(serials))
		for _, serial := range serials {
			if existingSet[serial] {
				result.Skipped = append(result.Skipped, serial)
				continue
			}
			products = append(products, models.InboundProduct{
				InboundId:    inboundID,
				Product:      product,
				SerialNumber: serial,
				Value:        value,
				Barcode:      s.Barcode(),
				Status:       models.StatusIn,
			})
		}

		if len(products) == 0 {
			return ErrAllDuplicates
		}

		count, err := repo.CreateInboundProductsBulk(products)
		if err != nil {
			return err
		}
		result.Created = int(count)
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Log.Info().
		Int64("inbound_id", inboundID).
		Int("created", result.Created).
		Int("skipped", len(result.Skipped)).
		Msg("batch added to inbound")

	return result, nil
}

// ImportFromTable applies the batch-add duplicate logic to rows extracted
// from a spreadsheet. Rows missing product or serial are skipped silently;
// the caller only gets counts back.
func (s *InboundService) ImportFromTable(inboundID int64, rows []ImportRow) (*ImportResult, error) {
	result := &ImportResult{}

	candidates := make([]ImportRow, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		row.Product = strings.TrimSpace(row.Product)
		row.SerialNumber = strings.TrimSpace(row.SerialNumber)
		row.Value = strings.TrimSpace(row.Value)
		if row.Product == "" || row.SerialNumber == "" || seen[row.SerialNumber] {
			result.Skipped++
			continue
		}
		seen[row.SerialNumber] = true
		candidates = append(candidates, row)
	}

	err := s.tx.RunTransaction(func(repo Repository) error {
		inbound, err := repo.FindInboundByID(inboundID)
		if err != nil {
			return err
		}
		if inbound == nil {
			return &NotFoundError{Entity: "inbound"}
		}

		if len(candidates) == 0 {
			return nil
		}

		serials := make([]string, 0, len(candidates))
		for _, row := range candidates {
			serials = append(serials, row.SerialNumber)
		}
		existing, err := repo.FindExistingSerials(serials)
		if err != nil {
			return err
		}
		existingSet := make(map[string]bool, len(existing))
		for _, serial := range existing {
			existingSet[serial] = true
		}

		products := make([]models.InboundProduct, 0, len(candidates))
		for _, row := range candidates {
			if existingSet[row.SerialNumber] {
				result.Skipped++
				continue
			}
			products = append(products, models.InboundProduct{
				InboundId:    inboundID,
				Product:      row.Product,
				SerialNumber: row.SerialNumber,
				Value:        row.Value,
				Barcode:      s.Barcode(),
				Status:       models.StatusIn,
			})
		}

		if len(products) == 0 {
			return nil
		}

		count, err := repo.CreateInboundProductsBulk(products)
		if err != nil {
			return err
		}
		result.Imported = int(count)
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Log.Info().
		Int64("inbound_id", inboundID).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("spreadsheet import finished")

	return result, nil
}
