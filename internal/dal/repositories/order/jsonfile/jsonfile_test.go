package jsonfilerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/service/models/order"
)

func newTestRepo(t *testing.T) *OrderRepository {
	t.Helper()
	client, err := jsonfile.NewClient(t.TempDir())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	return NewOrderRepository(client)
}

func TestOrderCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created := time.Now().Round(time.Millisecond)
	o := order.Order{ID: "o1", Products: []string{"p1", "p2"}, CreatedAt: created, Status: order.StatusPending}
	if err := repo.Insert(ctx, o); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.Get(ctx, "o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "o1" || got.Status != order.StatusPending {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(got.Products) != 2 || got.Products[0] != "p1" || got.Products[1] != "p2" {
		t.Fatalf("expected products [p1 p2], got %v", got.Products)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected fecha %v, got %v", created, got.CreatedAt)
	}

	o.Status = "completado"
	if err := repo.Update(ctx, o); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Get(ctx, "o1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Status != "completado" {
		t.Fatalf("expected estado completado, got %s", got.Status)
	}

	if err := repo.Delete(ctx, "o1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "o1"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOrderQueryFiltersByEstado(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	orders := []order.Order{
		{ID: "o1", Products: []string{"p"}, CreatedAt: time.Now(), Status: "pendiente"},
		{ID: "o2", Products: []string{"p"}, CreatedAt: time.Now(), Status: "completado"},
		{ID: "o3", Products: []string{"p"}, CreatedAt: time.Now(), Status: "pendiente"},
	}
	for _, o := range orders {
		if err := repo.Insert(ctx, o); err != nil {
			t.Fatalf("insert %s: %v", o.ID, err)
		}
	}

	all, err := repo.Query(ctx, nil)
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(all))
	}
	if all[0].ID != "o1" || all[1].ID != "o2" || all[2].ID != "o3" {
		t.Fatalf("expected stored order preserved, got %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}

	pending, err := repo.Query(ctx, &order.QueryOrdersModel{Statuses: []string{"pendiente"}})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "o1" || pending[1].ID != "o3" {
		t.Fatalf("unexpected filtered result: %+v", pending)
	}
}

func TestOrderNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
	if err := repo.Update(ctx, order.Order{ID: "nope"}); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
