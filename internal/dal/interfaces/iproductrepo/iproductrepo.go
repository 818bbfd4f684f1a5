package iproductrepo

import (
	"context"

	"github.com/mercadofake/store/internal/service/models/product"
)

// IProductRepository is an interface for the product snapshot repository.
type IProductRepository interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Insert(ctx context.Context, p product.Product) error
	Update(ctx context.Context, p product.Product) error
	Delete(ctx context.Context, id string) error
}
