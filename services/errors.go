package services

import (
	"errors"
	"fmt"
)

// Error kinds the controllers translate to HTTP statuses. Everything computed
// from identical inputs fails (or succeeds) identically; a day with unreadable
// data is an error, never a silent zero summary.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidRange     = errors.New("start date must be on or before end date")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("entry store unavailable")
)

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
