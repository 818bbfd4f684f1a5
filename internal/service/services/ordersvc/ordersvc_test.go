package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/viper"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	orderrepo "github.com/mercadofake/store/internal/dal/repositories/order/jsonfile"
	outboxrepo "github.com/mercadofake/store/internal/dal/repositories/outbox/jsonfile"
	productrepo "github.com/mercadofake/store/internal/dal/repositories/product/jsonfile"
	"github.com/mercadofake/store/internal/service/models/order"
	"github.com/mercadofake/store/internal/service/models/orderevent"
	"github.com/mercadofake/store/internal/service/models/product"
	"github.com/mercadofake/store/internal/service/services/productsvc"
)

type testEnv struct {
	orders   *OrderService
	products *productsvc.ProductService
	outbox   *outboxrepo.OutboxRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	client, err := jsonfile.NewClient(t.TempDir())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	pRepo := productrepo.NewProductRepository(client)
	oRepo := orderrepo.NewOrderRepository(client)
	obRepo := outboxrepo.NewOutboxRepository(client)

	return testEnv{
		orders: MustNewOrderService(
			WithOrderRepository(oRepo),
			WithProductRepository(pRepo),
			WithOutboxRepository(obRepo),
		),
		products: productsvc.MustNewProductService(
			productsvc.WithProductRepository(pRepo),
		),
		outbox: obRepo,
	}
}

func (e testEnv) createProduct(t *testing.T, name string) product.Product {
	t.Helper()
	p, err := e.products.Create(context.Background(), product.Product{Name: name, Price: 10, Description: "d"})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	return p
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p1 := env.createProduct(t, "Mouse")
	p2 := env.createProduct(t, "Teclado")

	o, err := env.orders.Create(ctx, []string{p2.ID, p1.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o.ID == "" {
		t.Fatal("expected non-empty order id")
	}
	if o.Status != order.StatusPending {
		t.Fatalf("expected estado %q, got %q", order.StatusPending, o.Status)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("expected fecha to be set")
	}
	if len(o.Products) != 2 || o.Products[0] != p2.ID || o.Products[1] != p1.ID {
		t.Fatalf("expected input product order preserved, got %v", o.Products)
	}
}

func TestCreateOrderRejectsUnknownProducts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.createProduct(t, "Mouse")

	if _, err := env.orders.Create(ctx, []string{p.ID, "ghost"}); !errors.Is(err, order.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}

	list, err := env.orders.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no orders after rejected create, got %d", len(list))
	}
}

func TestCreateOrderRejectsEmptyProducts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.orders.Create(ctx, nil); !errors.Is(err, order.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateEstadoLeavesProductsAndFecha(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.createProduct(t, "Mouse")

	created, err := env.orders.Create(ctx, []string{p.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	estado := "completado"
	updated, err := env.orders.Update(ctx, created.ID, order.UpdateOrderModel{Status: &estado})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "completado" {
		t.Fatalf("expected estado completado, got %s", updated.Status)
	}
	if len(updated.Products) != 1 || updated.Products[0] != p.ID {
		t.Fatalf("products changed: %v", updated.Products)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("fecha changed from %v to %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateProductsLeavesFecha(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p1 := env.createProduct(t, "Mouse")
	p2 := env.createProduct(t, "Teclado")

	created, err := env.orders.Create(ctx, []string{p1.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	newProducts := []string{p2.ID, p1.ID}
	updated, err := env.orders.Update(ctx, created.ID, order.UpdateOrderModel{Products: &newProducts})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Products) != 2 || updated.Products[0] != p2.ID {
		t.Fatalf("unexpected products: %v", updated.Products)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("fecha changed from %v to %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateRejectsUnknownProductsWithoutPartialChange(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.createProduct(t, "Mouse")

	created, err := env.orders.Create(ctx, []string{p.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	bad := []string{"ghost"}
	estado := "enviado"
	if _, err := env.orders.Update(ctx, created.ID, order.UpdateOrderModel{Products: &bad, Status: &estado}); !errors.Is(err, order.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}

	got, err := env.orders.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != order.StatusPending || got.Products[0] != p.ID {
		t.Fatalf("order changed despite rejected update: %+v", got)
	}
}

func TestOrderKeepsReferenceAfterProductDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.createProduct(t, "Mouse")

	created, err := env.orders.Create(ctx, []string{p.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := env.products.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	got, err := env.orders.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0] != p.ID {
		t.Fatalf("expected dangling reference preserved, got %v", got.Products)
	}
}

func TestOrderMutationsRecordOutboxEvents(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.createProduct(t, "Mouse")

	const queueName = "store.orders.events"
	viper.Set("rabbitmq.orders.queue", queueName)
	t.Cleanup(func() { viper.Set("rabbitmq.orders.queue", "") })

	created, err := env.orders.Create(ctx, []string{p.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	estado := "completado"
	if _, err := env.orders.Update(ctx, created.ID, order.UpdateOrderModel{Status: &estado}); err != nil {
		t.Fatalf("update order: %v", err)
	}
	if err := env.orders.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	pending, err := env.outbox.GetPendingMessages(ctx, 10)
	if err != nil {
		t.Fatalf("get pending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 recorded events, got %d", len(pending))
	}

	wantActions := []string{orderevent.ActionCreated, orderevent.ActionUpdated, orderevent.ActionDeleted}
	for i, want := range wantActions {
		msg := pending[i]

		// Default-exchange routing delivers to the queue whose name equals
		// the routing key, so the key must target the declared queue.
		if msg.ExchangeName != "" {
			t.Fatalf("event %d: expected default exchange, got %q", i, msg.ExchangeName)
		}
		if msg.RoutingKey != queueName {
			t.Fatalf("event %d: expected routing key %q, got %q", i, queueName, msg.RoutingKey)
		}
		if msg.QueueName != queueName {
			t.Fatalf("event %d: expected queue name %q, got %q", i, queueName, msg.QueueName)
		}

		var event orderevent.OrderEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			t.Fatalf("event %d: decode payload: %v", i, err)
		}
		if event.Action != want {
			t.Fatalf("event %d: expected action %s, got %s", i, want, event.Action)
		}
		if event.OrderID != created.ID {
			t.Fatalf("event %d: expected order id %s, got %s", i, created.ID, event.OrderID)
		}
	}
}

func TestGetAndDeleteMissingOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.orders.Get(ctx, "nope"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
	if err := env.orders.Delete(ctx, "nope"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	if _, err := env.orders.Update(ctx, "nope", order.UpdateOrderModel{}); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}
