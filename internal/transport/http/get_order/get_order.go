package getorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadofake/store/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Get(ctx context.Context, id string) (order.Order, error)
}

// GetOrder handles the get order request.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Router /orders/{id} [get]
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	o, err := service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting order", "id", id, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(o); err != nil {
		slog.Error("Error sending response for get order", "error", err)
	}
}
