package updateproduct

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mercadofake/store/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	Update(ctx context.Context, p product.Product) (product.Product, error)
}

// updateProductRequest represents an update product request. Every field is
// replaced; the id comes from the path and never changes.
type updateProductRequest struct {
	Nombre      string  `json:"nombre"      validate:"required"`
	Precio      float64 `json:"precio"      validate:"gt=0"`
	Descripcion string  `json:"descripcion" validate:"required"`
}

// Validate validates the update product request.
func (r *updateProductRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts updateProductRequest to product.Product.
func (r *updateProductRequest) toModel(id string) *product.Product {
	return &product.Product{
		ID:          id,
		Name:        r.Nombre,
		Price:       r.Precio,
		Description: r.Descripcion,
	}
}

// UpdateProduct handles the update product request.
// @Summary Update product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Router /products/{id} [put]
func UpdateProduct(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	req := updateProductRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error decoding request body for update product", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for update product", "error", err)

		return
	}

	updated, err := service.Update(r.Context(), *req.toModel(id))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)

			return
		}
		if errors.Is(err, product.ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error updating product", "id", id, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		slog.Error("Error sending response for update product", "error", err)
	}
}
