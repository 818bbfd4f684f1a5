package getproduct

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadofake/store/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	Get(ctx context.Context, id string) (product.Product, error)
}

// GetProduct handles the get product request.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Router /products/{id} [get]
func GetProduct(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	p, err := service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting product", "id", id, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("Error sending response for get product", "error", err)
	}
}
