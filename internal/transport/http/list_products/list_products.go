package listproducts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mercadofake/store/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]product.Product, error)
}

// ListProducts handles the list products request.
// @Summary List products
// @Produce json
// @Success 200 {array} product.Product
// @Router /products/ [get]
func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	products, err := service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing products", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		slog.Error("Error sending response for list products", "error", err)
	}
}
