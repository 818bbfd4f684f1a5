package order

import (
	"errors"
	"time"
)

// StatusPending is the estado assigned to every newly created order.
const StatusPending = "pendiente"

// Order represents a customer order referencing catalog products.
type Order struct {
	ID        string    `json:"id"`
	Products  []string  `json:"products"`
	CreatedAt time.Time `json:"fecha"`
	Status    string    `json:"estado"`
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// ErrUnknownProduct indicates the order references at least one product id
// absent from the catalog. The whole operation is rejected; no partial
// change is applied.
var ErrUnknownProduct = errors.New("order references unknown product")

// ErrValidation indicates the order fields do not satisfy the ordering rules.
var ErrValidation = errors.New("invalid order")
