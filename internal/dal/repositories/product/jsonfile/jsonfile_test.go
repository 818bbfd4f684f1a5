package jsonfilerepo

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/service/models/product"
)

func newTestRepo(t *testing.T) *ProductRepository {
	t.Helper()
	client, err := jsonfile.NewClient(t.TempDir())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	return NewProductRepository(client)
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := product.Product{ID: "p1", Name: "Mouse", Price: 20.0, Description: "USB"}
	if err := repo.Insert(ctx, p); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}

	p.Price = 25.5
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Price != 25.5 {
		t.Fatalf("expected updated price 25.5, got %v", got.Price)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "p1"); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestProductListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		p := product.Product{ID: id, Name: "n-" + id, Price: 1, Description: "d"}
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"a", "c", "d"}
	if len(list) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}

func TestProductNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
	if err := repo.Update(ctx, product.Product{ID: "nope", Name: "n", Price: 1, Description: "d"}); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestProductListOnEmptyStoreIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d products", len(list))
	}
}
