package jsonfilerepo

import (
	"context"
	"fmt"
	"time"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/service/models/order"
)

// SnapshotName is the file holding the order collection.
const SnapshotName = "orders.json"

// OrderDal represents the order record as stored in the snapshot file.
type OrderDal struct {
	Id       string    `json:"id"`
	Products []string  `json:"products"`
	Fecha    time.Time `json:"fecha"`
	Estado   string    `json:"estado"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:        o.Id,
		Products:  o.Products,
		CreatedAt: o.Fecha,
		Status:    o.Estado,
	}
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:       o.ID,
		Products: o.Products,
		Fecha:    o.CreatedAt,
		Estado:   o.Status,
	}
}

// OrderRepository persists orders in a JSON snapshot file.
type OrderRepository struct {
	col *jsonfile.Collection
}

// NewOrderRepository creates a new snapshot-backed order repository.
func NewOrderRepository(client *jsonfile.Client) *OrderRepository {
	return &OrderRepository{
		col: client.Collection(SnapshotName),
	}
}

// Query returns orders in stored order, optionally filtered by estado.
func (r *OrderRepository) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	r.col.RLock()
	defer r.col.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]order.Order, 0, len(records))
	for i := range records {
		if filter != nil && len(filter.Statuses) > 0 && !containsString(filter.Statuses, records[i].Estado) {
			continue
		}
		result = append(result, *records[i].ToModel())
	}

	return result, nil
}

// Get returns the order with the given id.
func (r *OrderRepository) Get(ctx context.Context, id string) (order.Order, error) {
	r.col.RLock()
	defer r.col.RUnlock()

	records, err := r.load()
	if err != nil {
		return order.Order{}, err
	}

	for i := range records {
		if records[i].Id == id {
			return *records[i].ToModel(), nil
		}
	}

	return order.Order{}, order.ErrNotFound
}

// Insert appends a new order and rewrites the snapshot.
func (r *OrderRepository) Insert(ctx context.Context, o order.Order) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	records = append(records, *OrderDalFromModel(&o))

	return r.col.Save(records)
}

// Update replaces the stored record with the same id and rewrites the
// snapshot.
func (r *OrderRepository) Update(ctx context.Context, o order.Order) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Id == o.ID {
			records[i] = *OrderDalFromModel(&o)

			return r.col.Save(records)
		}
	}

	return order.ErrNotFound
}

// Delete removes the record with the given id and rewrites the snapshot.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
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

	return order.ErrNotFound
}

func (r *OrderRepository) load() ([]OrderDal, error) {
	records := make([]OrderDal, 0)
	if err := r.col.Load(&records); err != nil {
		return nil, fmt.Errorf("failed to load order snapshot: %w", err)
	}

	return records, nil
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}
