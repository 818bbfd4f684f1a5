package createproduct

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mercadofake/store/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, p product.Product) (product.Product, error)
}

// createProductRequest represents a create product request.
type createProductRequest struct {
	Nombre      string  `json:"nombre"      validate:"required"`
	Precio      float64 `json:"precio"      validate:"gt=0"`
	Descripcion string  `json:"descripcion" validate:"required"`
}

// Validate validates the create product request.
func (r *createProductRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createProductRequest to product.Product.
func (r *createProductRequest) toModel() *product.Product {
	return &product.Product{
		Name:        r.Nombre,
		Price:       r.Precio,
		Description: r.Descripcion,
	}
}

// CreateProduct handles the create product request.
// @Summary Create product
// @Accept json
// @Produce json
// @Success 201 {object} product.Product
// @Router /products/ [post]
func CreateProduct(w http.ResponseWriter, r *http.Request, service service) {
	req := createProductRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error decoding request body for create product", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		slog.Error("Error validating request body for create product", "error", err)

		return
	}

	created, err := service.Create(r.Context(), *req.toModel())
	if err != nil {
		if errors.Is(err, product.ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating product", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create product", "error", err)
	}
}
