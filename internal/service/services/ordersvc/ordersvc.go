package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/mercadofake/store/internal/dal/interfaces/iorderrepo"
	"github.com/mercadofake/store/internal/dal/interfaces/ioutboxrepo"
	"github.com/mercadofake/store/internal/dal/interfaces/iproductrepo"
	"github.com/mercadofake/store/internal/service/models/order"
	"github.com/mercadofake/store/internal/service/models/orderevent"
	"github.com/mercadofake/store/internal/service/models/outbox"
	"github.com/mercadofake/store/internal/service/refcheck"
)

// OrderService is a service for managing orders.
type OrderService struct {
	orderRepo   iorderrepo.IOrderRepository
	productRepo iproductrepo.IProductRepository
	outboxRepo  ioutboxrepo.IOutboxRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderRepo == nil || s.productRepo == nil {
		panic("ordersvc: order and product repositories are required")
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = repo
	}
}

// WithProductRepository sets the product repository used for reference
// validation.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *OrderService) {
		s.productRepo = repo
	}
}

// WithOutboxRepository sets the outbox repository. When nil, order events
// are not recorded.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOutboxRepository(repo ioutboxrepo.IOutboxRepository) option {
	return func(s *OrderService) {
		s.outboxRepo = repo
	}
}

// List returns orders in stored order, optionally filtered by estado.
func (s *OrderService) List(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	return s.orderRepo.Query(ctx, filter)
}

// Get returns the order with the given id.
func (s *OrderService) Get(ctx context.Context, id string) (order.Order, error) {
	return s.orderRepo.Get(ctx, id)
}

// Create validates every referenced product against the current catalog and
// persists a new pending order. On any unknown reference no order is created.
func (s *OrderService) Create(ctx context.Context, productIDs []string) (order.Order, error) {
	if len(productIDs) == 0 {
		return order.Order{}, fmt.Errorf("%w: products must not be empty", order.ErrValidation)
	}

	if err := s.checkReferences(ctx, productIDs); err != nil {
		return order.Order{}, err
	}

	o := order.Order{
		ID:        uuid.NewString(),
		Products:  productIDs,
		CreatedAt: time.Now(),
		Status:    order.StatusPending,
	}

	if err := s.orderRepo.Insert(ctx, o); err != nil {
		return order.Order{}, err
	}

	s.recordEvent(ctx, o, orderevent.ActionCreated)

	return o, nil
}

// Update applies the provided fields to an existing order. A provided
// products list is re-validated against the current catalog before anything
// is written. The creation timestamp is never altered.
func (s *OrderService) Update(ctx context.Context, id string, upd order.UpdateOrderModel) (order.Order, error) {
	o, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}

	if upd.Products != nil {
		if len(*upd.Products) == 0 {
			return order.Order{}, fmt.Errorf("%w: products must not be empty", order.ErrValidation)
		}
		if err := s.checkReferences(ctx, *upd.Products); err != nil {
			return order.Order{}, err
		}
		o.Products = *upd.Products
	}

	if upd.Status != nil {
		o.Status = *upd.Status
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return order.Order{}, err
	}

	s.recordEvent(ctx, o, orderevent.ActionUpdated)

	return o, nil
}

// Delete removes the order with the given id.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	o, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordEvent(ctx, o, orderevent.ActionDeleted)

	return nil
}

// checkReferences rejects the product id list when any id is absent from the
// catalog at the moment of the call.
func (s *OrderService) checkReferences(ctx context.Context, productIDs []string) error {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return err
	}

	existing := make([]string, 0, len(products))
	for _, p := range products {
		existing = append(existing, p.ID)
	}

	if missing := refcheck.Missing(productIDs, existing); len(missing) > 0 {
		return fmt.Errorf("%w: %v", order.ErrUnknownProduct, missing)
	}

	return nil
}

// recordEvent writes an order lifecycle event to the outbox. Event loss does
// not fail the order operation; failures are only logged.
func (s *OrderService) recordEvent(ctx context.Context, o order.Order, action string) {
	if s.outboxRepo == nil {
		return
	}

	event := orderevent.OrderEvent{
		OrderID:    o.ID,
		Action:     action,
		Status:     o.Status,
		Products:   o.Products,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal order event", "order_id", o.ID, "action", action, "error", err)

		return
	}

	maxRetries := viper.GetInt("rabbitmq.outbox.max_retries")
	if maxRetries == 0 {
		maxRetries = 5
	}

	// Publishing goes through the default exchange, which routes on the
	// queue name. The action travels in the payload.
	queueName := viper.GetString("rabbitmq.orders.queue")

	now := time.Now()
	msg := outbox.OutboxMessage{
		ID:           uuid.NewString(),
		QueueName:    queueName,
		ExchangeName: "",
		RoutingKey:   queueName,
		Payload:      payload,
		ContentType:  "application/json",
		MaxRetries:   maxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
		NextRetryAt:  now,
	}

	if err := s.outboxRepo.Insert(ctx, msg); err != nil {
		slog.Error("Failed to record order event in outbox", "order_id", o.ID, "action", action, "error", err)
	}
}
