package orderevent

import "time"

// Actions recorded for order lifecycle events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// OrderEvent is the payload published for every order mutation.
type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	Action     string    `json:"action"`
	Status     string    `json:"estado"`
	Products   []string  `json:"products"`
	OccurredAt time.Time `json:"occurred_at"`
}
