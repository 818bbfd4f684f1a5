package product

import (
	"errors"
	"fmt"
)

// Product represents a catalog product in the system.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nombre"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion"`
}

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// ErrValidation indicates the product fields do not satisfy the catalog rules.
var ErrValidation = errors.New("invalid product")

// Validate checks the catalog rules: non-empty nombre and descripcion,
// precio strictly greater than zero.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: nombre must not be empty", ErrValidation)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: descripcion must not be empty", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: precio must be greater than zero", ErrValidation)
	}

	return nil
}
