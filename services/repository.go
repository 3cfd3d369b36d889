package services

import "fiber-tracker/models"

// Repository is the persistence contract the services work against. The
// Gorm implementation lives in the repositories package; tests use an
// in-memory fake. Find methods return nil without error when no row
// matches.
type Repository interface {
	FindClientByName(name string) (*models.Client, error)
	FindInboundByID(id int64) (*models.InboundHeader, error)
	FindOutboundByNumber(number string) (*models.OutboundHeader, error)

	FindInboundProductBySerial(serial string) (*models.InboundProduct, error)
	FindInboundProductsBySerials(serials []string) ([]models.InboundProduct, error)
	// FindExistingSerials returns which of the given serials already have an
	// inbound product row.
	FindExistingSerials(serials []string) ([]string, error)

	CreateInboundProduct(p *models.InboundProduct) error
	CreateInboundProductsBulk(ps []models.InboundProduct) (int64, error)

	CreateOutboundProduct(p *models.OutboundProduct) error
	CreateOutboundProductsBulk(ps []models.OutboundProduct) (int64, error)
	FindOutboundProductByID(id int64) (*models.OutboundProduct, error)
	DeleteOutboundProduct(id int64) error

	// MarkInboundProductOut flips status IN -> OUT as a conditional update
	// and reports the affected row count, so two racing transfers cannot
	// both succeed.
	MarkInboundProductOut(id int64) (int64, error)
	MarkInboundProductsOutBulk(ids []int64) (int64, error)
	// RestoreInboundProduct flips a unit back to IN when its outbound
	// counterpart is removed.
	RestoreInboundProduct(id int64) error
}

// TxRunner executes work inside a database transaction. Any error returned
// by fn rolls the whole transaction back.
type TxRunner interface {
	RunTransaction(fn func(repo Repository) error) error
}
