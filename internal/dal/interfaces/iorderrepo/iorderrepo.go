package iorderrepo

import (
	"context"

	"github.com/mercadofake/store/internal/service/models/order"
)

// IOrderRepository is an interface for the order snapshot repository.
type IOrderRepository interface {
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Insert(ctx context.Context, o order.Order) error
	Update(ctx context.Context, o order.Order) error
	Delete(ctx context.Context, id string) error
}
