package repositories

import (
	"errors"

	"fiber-tracker/models"
	"fiber-tracker/services"

	"gorm.io/gorm"
)

// TrackerRepository is the Gorm implementation of services.Repository. It
// works against either a live *gorm.DB or a transaction handle; the
// TxRunner binds one to an open transaction.
type TrackerRepository struct {
	db *gorm.DB
}

var _ services.Repository = (*TrackerRepository)(nil)

func NewTrackerRepository(db *gorm.DB) *TrackerRepository {
	return &TrackerRepository{db: db}
}

func (r *TrackerRepository) FindClientByName(name string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *TrackerRepository) FindInboundByID(id int64) (*models.InboundHeader, error) {
	var inbound models.InboundHeader
	if err := r.db.First(&inbound, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inbound, nil
}

func (r *TrackerRepository) FindOutboundByNumber(number string) (*models.OutboundHeader, error) {
	var outbound models.OutboundHeader
	if err := r.db.First(&outbound, "outbound_no = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &outbound, nil
}

func (r *TrackerRepository) FindInboundProductBySerial(serial string) (*models.InboundProduct, error) {
	var product models.InboundProduct
	if err := r.db.First(&product, "serial_number = ?", serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *TrackerRepository) FindInboundProductsBySerials(serials []string) ([]models.InboundProduct, error) {
	var products []models.InboundProduct
	if err := r.db.Where("serial_number IN ?", serials).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *TrackerRepository) FindExistingSerials(serials []string) ([]string, error) {
	var existing []string
	err := r.db.Model(&models.InboundProduct{}).
		Where("serial_number IN ?", serials).
		Pluck("serial_number", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *TrackerRepository) CreateInboundProduct(p *models.InboundProduct) error {
	return r.db.Create(p).Error
}

func (r *TrackerRepository) CreateInboundProductsBulk(ps []models.InboundProduct) (int64, error) {
	res := r.db.Create(&ps)
	return res.RowsAffected, res.Error
}

func (r *TrackerRepository) CreateOutboundProduct(p *models.OutboundProduct) error {
	return r.db.Create(p).Error
}

func (r *TrackerRepository) CreateOutboundProductsBulk(ps []models.OutboundProduct) (int64, error) {
	res := r.db.Create(&ps)
	return res.RowsAffected, res.Error
}

func (r *TrackerRepository) FindOutboundProductByID(id int64) (*models.OutboundProduct, error) {
	var product models.OutboundProduct
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *TrackerRepository) DeleteOutboundProduct(id int64) error {
	return r.db.Unscoped().Delete(&models.OutboundProduct{}, "id = ?", id).Error
}

// MarkInboundProductOut is a conditional update: the WHERE on status makes
// the IN -> OUT flip atomic, the caller checks the affected count.
func (r *TrackerRepository) MarkInboundProductOut(id int64) (int64, error) {
	res := r.db.Model(&models.InboundProduct{}).
		Where("id = ? AND status = ?", id, models.StatusIn).
		Update("status", models.StatusOut)
	return res.RowsAffected, res.Error
}

func (r *TrackerRepository) MarkInboundProductsOutBulk(ids []int64) (int64, error) {
	res := r.db.Model(&models.InboundProduct{}).
		Where("id IN ? AND status = ?", ids, models.StatusIn).
		Update("status", models.StatusOut)
	return res.RowsAffected, res.Error
}

func (r *TrackerRepository) RestoreInboundProduct(id int64) error {
	return r.db.Model(&models.InboundProduct{}).
		Where("id = ?", id).
		Update("status", models.StatusIn).Error
}
