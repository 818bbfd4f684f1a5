package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mercadofake/store/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, productIDs []string) (order.Order, error)
}

// itemInCreateOrderRequest represents one product reference in a create
// order request.
type itemInCreateOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	Products []itemInCreateOrderRequest `json:"products" validate:"required,min=1,dive"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// productIDs flattens the request items into the referenced product id
// sequence, preserving order.
func (r *createOrderRequest) productIDs() []string {
	ids := make([]string, len(r.Products))
	for i, item := range r.Products {
		ids[i] = item.ProductID
	}

	return ids
}

// CreateOrder handles the create order request.
// @Summary Create order
// @Accept json
// @Produce json
// @Success 201 {object} order.Order
// @Router /orders/ [post]
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	created, err := service.Create(r.Context(), req.productIDs())
	if err != nil {
		if errors.Is(err, order.ErrUnknownProduct) {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		if errors.Is(err, order.ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}
