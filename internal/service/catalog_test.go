package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/repo"
	"github.com/SergeyBogomolovv/dairy-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogAPI interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListAvailable(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	Seed(ctx context.Context) error
}

func newCatalogService(t *testing.T) (catalogAPI, *repo.MemoryRepo) {
	t.Helper()
	store := repo.NewMemoryRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewCatalogService(logger, store, store), store
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(t)

	created, err := svc.CreateProduct(ctx, entities.Product{
		Name:  "Milk (1L)",
		Price: decimal.NewFromInt(50),
		Stock: decimal.NewFromInt(100),
		Unit:  "Liter",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk (1L)", got.Name)

	_, err = svc.CreateProduct(ctx, entities.Product{
		Name:  "Bad",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, entities.ErrInvalidProduct)

	_, err = svc.CreateProduct(ctx, entities.Product{
		Name:  "Bad",
		Stock: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, entities.ErrInvalidProduct)
}

func TestCatalogService_ListAvailable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(t)

	_, err := svc.CreateProduct(ctx, entities.Product{
		Name: "In stock", Price: decimal.NewFromInt(50), Stock: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, entities.Product{
		Name: "Sold out", Price: decimal.NewFromInt(80), Stock: decimal.Zero,
	})
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "In stock", available[0].Name)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc, store := newCatalogService(t)

	created, err := svc.CreateProduct(ctx, entities.Product{
		Name: "Paneer (500g)", Price: decimal.NewFromInt(250), Stock: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	// once an order references the product it must stay for history
	require.NoError(t, store.SaveItems(ctx, "order-1", []entities.OrderItem{
		{ID: "item-1", OrderID: "order-1", ProductID: created.ID, Quantity: decimal.NewFromInt(1)},
	}))
	err = svc.DeleteProduct(ctx, created.ID)
	assert.ErrorIs(t, err, entities.ErrProductReferenced)

	unreferenced, err := svc.CreateProduct(ctx, entities.Product{
		Name: "Ghee (500ml)", Price: decimal.NewFromInt(500), Stock: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProduct(ctx, unreferenced.ID))

	_, err = svc.GetProduct(ctx, unreferenced.ID)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(t)

	created, err := svc.CreateProduct(ctx, entities.Product{
		Name: "Cheese (200g)", Price: decimal.NewFromInt(150), Stock: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	created.Price = decimal.NewFromInt(160)
	require.NoError(t, svc.UpdateProduct(ctx, created))

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(160)))

	missing := created
	missing.ID = "missing"
	err = svc.UpdateProduct(ctx, missing)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestCatalogService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(t)

	require.NoError(t, svc.Seed(ctx))
	seeded, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, seeded)

	// seeding again must not duplicate anything
	require.NoError(t, svc.Seed(ctx))
	again, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(seeded))
}
