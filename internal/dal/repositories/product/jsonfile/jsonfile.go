package jsonfilerepo

import (
	"context"
	"fmt"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/service/models/product"
)

// SnapshotName is the file holding the product collection.
const SnapshotName = "products.json"

// ProductDal represents the product record as stored in the snapshot file.
type ProductDal struct {
	Id          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}

// ToModel converts ProductDal to the service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:          p.Id,
		Name:        p.Nombre,
		Price:       p.Precio,
		Description: p.Descripcion,
	}
}

// ProductDalFromModel converts the service layer Product model to ProductDal.
func ProductDalFromModel(p *product.Product) *ProductDal {
	return &ProductDal{
		Id:          p.ID,
		Nombre:      p.Name,
		Precio:      p.Price,
		Descripcion: p.Description,
	}
}

// ProductRepository persists products in a JSON snapshot file.
type ProductRepository struct {
	col *jsonfile.Collection
}

// NewProductRepository creates a new snapshot-backed product repository.
func NewProductRepository(client *jsonfile.Client) *ProductRepository {
	return &ProductRepository{
		col: client.Collection(SnapshotName),
	}
}

// List returns all products in stored order.
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	r.col.RLock()
	defer r.col.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]product.Product, 0, len(records))
	for i := range records {
		result = append(result, *records[i].ToModel())
	}

	return result, nil
}

// Get returns the product with the given id.
func (r *ProductRepository) Get(ctx context.Context, id string) (product.Product, error) {
	r.col.RLock()
	defer r.col.RUnlock()

	records, err := r.load()
	if err != nil {
		return product.Product{}, err
	}

	for i := range records {
		if records[i].Id == id {
			return *records[i].ToModel(), nil
		}
	}

	return product.Product{}, product.ErrNotFound
}

// Insert appends a new product and rewrites the snapshot.
func (r *ProductRepository) Insert(ctx context.Context, p product.Product) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	records = append(records, *ProductDalFromModel(&p))

	return r.col.Save(records)
}

// Update replaces the stored record with the same id and rewrites the
// snapshot.
func (r *ProductRepository) Update(ctx context.Context, p product.Product) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Id == p.ID {
			records[i] = *ProductDalFromModel(&p)

			return r.col.Save(records)
		}
	}

	return product.ErrNotFound
}

// Delete removes the record with the given id and rewrites the snapshot.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Id == id {
			records = append(records[:i], records[i+1:]...)

			return r.col.Save(records)
		}
	}

	return product.ErrNotFound
}

func (r *ProductRepository) load() ([]ProductDal, error) {
	records := make([]ProductDal, 0)
	if err := r.col.Load(&records); err != nil {
		return nil, fmt.Errorf("failed to load product snapshot: %w", err)
	}

	return records, nil
}
