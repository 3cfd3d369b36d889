package services

import (
	"fmt"
	"strings"

	"fiber-tracker/logger"
	"fiber-tracker/models"
	"fiber-tracker/utils"
)

// TransferService owns the inbound to outbound movement of serialized
// units: single transfer, batch transfer and the reverse path when an
// outbound product is removed.
type TransferService struct {
	tx     TxRunner
	repo   Repository
	mailer DispatchMailer

	// Barcode is swappable for tests.
	Barcode func() string
}

func NewTransferService(tx TxRunner, repo Repository, mailer DispatchMailer) *TransferService {
	return &TransferService{
		tx:      tx,
		repo:    repo,
		mailer:  mailer,
		Barcode: utils.GenerateBarcode,
	}
}

// BatchTransferResult reports the per-serial outcome of a batch transfer.
type BatchTransferResult struct {
	Success         bool     `json:"success"`
	Created         int      `json:"created"`
	Moved           []string `json:"moved"`
	AlreadyAssigned []string `json:"already_assigned"`
	NotFound        []string `json:"not_found"`
}

// TransferSingle moves one inbound product onto the outbound shipment
// identified by its outbound number. The lookup, status check, outbound
// product insert and status flip run in one transaction; either all of it
// happens or none of it does.
func (s *TransferService) TransferSingle(serial, outboundNumber string) (*models.OutboundProduct, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, &InvalidInputError{Reason: "serial number is required"}
	}
	if strings.TrimSpace(outboundNumber) == "" {
		return nil, &InvalidInputError{Reason: "outbound number is required"}
	}

	var created models.OutboundProduct

	err := s.tx.RunTransaction(func(repo Repository) error {
		outbound, err := repo.FindOutboundByNumber(outboundNumber)
		if err != nil {
			return err
		}
		if outbound == nil {
			return &NotFoundError{Entity: "outbound " + outboundNumber}
		}

		inboundProduct, err := repo.FindInboundProductBySerial(serial)
		if err != nil {
			return err
		}
		if inboundProduct == nil {
			return &NotFoundError{Entity: "inbound product with serial " + serial}
		}
		if inboundProduct.Status != models.StatusIn {
			return &AlreadyAssignedError{Serial: serial}
		}

		created = models.OutboundProduct{
			OutboundId:      outbound.ID,
			OriginInboundId: inboundProduct.InboundId,
			Product:         inboundProduct.Product,
			SerialNumber:    inboundProduct.SerialNumber,
			Value:           inboundProduct.Value,
			Barcode:         s.Barcode(),
		}
		if err := repo.CreateOutboundProduct(&created); err != nil {
			return err
		}

		affected, err := repo.MarkInboundProductOut(inboundProduct.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Lost a race with a concurrent transfer; abort so the insert
			// above rolls back too.
			return &AlreadyAssignedError{Serial: serial}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Log.Info().
		Str("serial", serial).
		Str("outbound_no", outboundNumber).
		Msg("inbound product transferred")

	s.notifyDispatch(outboundNumber, map[int64][]string{
		created.OriginInboundId: {created.SerialNumber},
	})

	return &created, nil
}

// TransferBatch moves every transferable serial in the list onto the
// outbound shipment and reports the rest as already assigned or not found.
// Writes happen only when at least one unit is transferable.
func (s *TransferService) TransferBatch(serials []string, outboundNumber string) (*BatchTransferResult, error) {
	serials = NormalizeSerials(strings.Join(serials, "\n"))
	if len(serials) == 0 {
		return nil, &InvalidInputError{Reason: "at least one serial number is required"}
	}
	if strings.TrimSpace(outboundNumber) == "" {
		return nil, &InvalidInputError{Reason: "outbound number is required"}
	}

	result := &BatchTransferResult{}
	origins := make(map[int64][]string)

	err := s.tx.RunTransaction(func(repo Repository) error {
		outbound, err := repo.FindOutboundByNumber(outboundNumber)
		if err != nil {
			return err
		}
		if outbound == nil {
			return &NotFoundError{Entity: "outbound " + outboundNumber}
		}

		found, err := repo.FindInboundProductsBySerials(serials)
		if err != nil {
			return err
		}

		bySerial := make(map[string]models.InboundProduct, len(found))
		for _, p := range found {
			bySerial[p.SerialNumber] = p
		}

		var validInbound []models.InboundProduct
		for _, serial := range serials {
			p, ok := bySerial[serial]
			switch {
			case !ok:
				result.NotFound = append(result.NotFound, serial)
			case p.Status != models.StatusIn:
				result.AlreadyAssigned = append(result.AlreadyAssigned, serial)
			default:
				validInbound = append(validInbound, p)
				result.Moved = append(result.Moved, serial)
			}
		}

		if len(validInbound) == 0 {
			// Nothing transferable; report the buckets without writing.
			return nil
		}

		outboundProducts := make([]models.OutboundProduct, 0, len(validInbound))
		ids := make([]int64, 0, len(validInbound))
		for _, p := range validInbound {
			outboundProducts = append(outboundProducts, models.OutboundProduct{
				OutboundId:      outbound.ID,
				OriginInboundId: p.InboundId,
				Product:         p.Product,
				SerialNumber:    p.SerialNumber,
				Value:           p.Value,
				Barcode:         s.Barcode(),
			})
			ids = append(ids, p.ID)
			origins[p.InboundId] = append(origins[p.InboundId], p.SerialNumber)
		}

		count, err := repo.CreateOutboundProductsBulk(outboundProducts)
		if err != nil {
			return err
		}

		affected, err := repo.MarkInboundProductsOutBulk(ids)
		if err != nil {
			return err
		}
		if affected != int64(len(ids)) {
			// A concurrent transfer grabbed some of these rows between the
			// read and the update. Abort the whole batch.
			return fmt.Errorf("inbound status changed during transfer: %d of %d updated", affected, len(ids))
		}

		result.Created = int(count)
		result.Success = true
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if result.Success {
		logger.Log.Info().
			Str("outbound_no", outboundNumber).
			Int("created", result.Created).
			Int("already_assigned", len(result.AlreadyAssigned)).
			Int("not_found", len(result.NotFound)).
			Msg("batch transfer committed")

		s.notifyDispatch(outboundNumber, origins)
	}

	return result, nil
}

// ReturnProduct removes an outbound product and flips the inbound unit with
// the same serial back to IN, in one transaction.
func (s *TransferService) ReturnProduct(outboundProductID int64) error {
	err := s.tx.RunTransaction(func(repo Repository) error {
		outboundProduct, err := repo.FindOutboundProductByID(outboundProductID)
		if err != nil {
			return err
		}
		if outboundProduct == nil {
			return &NotFoundError{Entity: "outbound product"}
		}

		inboundProduct, err := repo.FindInboundProductBySerial(outboundProduct.SerialNumber)
		if err != nil {
			return err
		}
		if inboundProduct != nil {
			if err := repo.RestoreInboundProduct(inboundProduct.ID); err != nil {
				return err
			}
		}

		return repo.DeleteOutboundProduct(outboundProductID)
	})
	if err != nil {
		return classify(err)
	}

	logger.Log.Info().Int64("outbound_product_id", outboundProductID).Msg("outbound product returned")
	return nil
}

// notifyDispatch mails the client of every subscribed origin inbound after
// a committed transfer. Best effort: failures are logged, never surfaced.
func (s *TransferService) notifyDispatch(outboundNumber string, origins map[int64][]string) {
	if s.mailer == nil {
		return
	}

	for inboundID, serials := range origins {
		inbound, err := s.repo.FindInboundByID(inboundID)
		if err != nil || inbound == nil || !inbound.IsSubscribed {
			continue
		}
		client, err := s.repo.FindClientByName(inbound.ClientName)
		if err != nil || client == nil || client.Email == "" {
			continue
		}
		if err := s.mailer.SendDispatchNotice(client.Email, client.Name, outboundNumber, serials); err != nil {
			logger.Log.Warn().Err(err).
				Str("client", client.Name).
				Str("outbound_no", outboundNumber).
				Msg("dispatch notification failed")
		}
	}
}
