package productsvc

import (
	"context"

	"github.com/google/uuid"

	"github.com/mercadofake/store/internal/dal/interfaces/iproductrepo"
	"github.com/mercadofake/store/internal/service/models/product"
)

// ProductService is a service for managing catalog products.
type ProductService struct {
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the ProductService.
type option func(*ProductService)

// MustNewProductService creates a new ProductService.
func MustNewProductService(opts ...option) *ProductService {
	s := &ProductService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.productRepo == nil {
		panic("productsvc: product repository is required")
	}

	return s
}

// WithProductRepository sets the product repository for the ProductService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *ProductService) {
		s.productRepo = repo
	}
}

// List returns all products in stored order.
func (s *ProductService) List(ctx context.Context) ([]product.Product, error) {
	return s.productRepo.List(ctx)
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id string) (product.Product, error) {
	return s.productRepo.Get(ctx, id)
}

// Create validates the product, assigns a fresh id and persists it.
func (s *ProductService) Create(ctx context.Context, p product.Product) (product.Product, error) {
	if err := p.Validate(); err != nil {
		return product.Product{}, err
	}

	p.ID = uuid.NewString()
	if err := s.productRepo.Insert(ctx, p); err != nil {
		return product.Product{}, err
	}

	return p, nil
}

// Update replaces every field of the stored product except its id.
func (s *ProductService) Update(ctx context.Context, p product.Product) (product.Product, error) {
	if err := p.Validate(); err != nil {
		return product.Product{}, err
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		return product.Product{}, err
	}

	return p, nil
}

// Delete removes the product with the given id. Orders that reference the
// product keep their reference; integrity is checked only at order write
// time.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
