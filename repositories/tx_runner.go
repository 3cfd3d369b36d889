package repositories

import (
	"fiber-tracker/services"

	"gorm.io/gorm"
)

// TxRunner runs service work inside a Gorm transaction, handing the
// callback a repository bound to the transaction handle.
type TxRunner struct {
	db *gorm.DB
}

var _ services.TxRunner = (*TxRunner)(nil)

func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) RunTransaction(fn func(repo services.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewTrackerRepository(tx))
	})
}
