package deleteproduct

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadofake/store/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	Delete(ctx context.Context, id string) error
}

// DeleteProduct handles the delete product request.
// @Summary Delete product
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func DeleteProduct(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	if err := service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting product", "id", id, "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
