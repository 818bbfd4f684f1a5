package deleteorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadofake/store/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Delete(ctx context.Context, id string) error
}

// DeleteOrder handles the delete order request.
// @Summary Delete order
// @Param id path string true "Order ID"
// @Success 204
// @Router /orders/{id} [delete]
func DeleteOrder(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	if err := service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting order", "id", id, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
