package updateorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mercadofake/store/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Update(ctx context.Context, id string, upd order.UpdateOrderModel) (order.Order, error)
}

// updateOrderRequest represents an update order request. Nil fields are left
// unchanged; fecha is not updatable.
type updateOrderRequest struct {
	Products *[]string `json:"products,omitempty" validate:"omitempty,min=1,dive,required"`
	Estado   *string   `json:"estado,omitempty"`
}

// Validate validates the update order request.
func (r *updateOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts updateOrderRequest to order.UpdateOrderModel.
func (r *updateOrderRequest) toModel() order.UpdateOrderModel {
	return order.UpdateOrderModel{
		Products: r.Products,
		Status:   r.Estado,
	}
}

// UpdateOrder handles the update order request.
// @Summary Update order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Router /orders/{id} [put]
func UpdateOrder(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	req := updateOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error decoding request body for update order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for update order", "error", err)

		return
	}

	updated, err := service.Update(r.Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		if errors.Is(err, order.ErrUnknownProduct) {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		if errors.Is(err, order.ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating order", "id", id, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		slog.Error("Error sending response for update order", "error", err)
	}
}
