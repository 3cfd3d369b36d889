package services

import (
	"errors"
	"fmt"
)

// ErrAllDuplicates is returned by batch adds where every serial number in
// the batch already exists in the store.
var ErrAllDuplicates = errors.New("all serial numbers already exist")

// NotFoundError reports a missing entity (outbound shipment, inbound
// shipment or inbound product).
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// AlreadyAssignedError reports a transfer attempt on a unit that is no
// longer IN.
type AlreadyAssignedError struct {
	Serial string
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("product with serial %s is already assigned", e.Serial)
}

// DuplicateSerialError reports an insert attempt with a serial number that
// already exists.
type DuplicateSerialError struct {
	Serial string
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("duplicate serial number %s", e.Serial)
}

type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// TransactionError wraps any non-domain failure raised inside a
// transaction. Callers show a generic message, the cause is logged.
type TransactionError struct {
	Cause error
}

func (e *TransactionError) Error() string {
	return "transaction failed: " + e.Cause.Error()
}

func (e *TransactionError) Unwrap() error {
	return e.Cause
}

// classify passes domain errors through untouched and wraps everything else
// as a TransactionError so the transaction boundary stays visible to
// callers.
func classify(err error) error {
	var (
		nf *NotFoundError
		aa *AlreadyAssignedError
		ds *DuplicateSerialError
		ii *InvalidInputError
	)
	if errors.As(err, &nf) || errors.As(err, &aa) || errors.As(err, &ds) ||
		errors.As(err, &ii) || errors.Is(err, ErrAllDuplicates) {
		return err
	}
	return &TransactionError{Cause: err}
}
