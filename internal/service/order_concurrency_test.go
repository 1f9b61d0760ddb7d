package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/repo"
	"github.com/SergeyBogomolovv/dairy-service/internal/service"
	mocks "github.com/SergeyBogomolovv/dairy-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/dairy-service/pkg/cache"
	"github.com/SergeyBogomolovv/dairy-service/pkg/trm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type orderPlacer interface {
	PlaceOrder(ctx context.Context, userID string, lines []entities.BasketLine) (entities.Order, error)
}

func newMemoryOrderService(t *testing.T, products ...entities.Product) (orderPlacer, service.CatalogStore) {
	t.Helper()

	store := repo.NewMemoryRepo()
	for _, p := range products {
		require.NoError(t, store.CreateProduct(context.Background(), p))
	}

	notifier := mocks.NewMockOrderNotifier(t)
	notifier.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(
		logger,
		trm.Noop(),
		store,
		store,
		cache.NewLRUCache(16, time.Minute),
		notifier,
	)
	return svc, store
}

func TestOrderService_ConcurrentPlacement(t *testing.T) {
	product := entities.Product{
		ID:    "milk-id",
		Name:  "Milk",
		Price: decimal.NewFromInt(50),
		Stock: decimal.NewFromInt(10),
	}
	svc, store := newMemoryOrderService(t, product)

	// both buyers want the entire stock, only one can get it
	var eg errgroup.Group
	results := make([]error, 2)
	for i := range results {
		i := i
		eg.Go(func() error {
			_, err := svc.PlaceOrder(context.Background(), "user-1", []entities.BasketLine{
				{ProductID: "milk-id", Quantity: decimal.NewFromInt(10)},
			})
			results[i] = err
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	var succeeded, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, entities.ErrStockConflict) || errors.Is(err, entities.ErrInsufficientStock):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	got, err := store.GetProduct(context.Background(), "milk-id")
	require.NoError(t, err)
	assert.True(t, got.Stock.IsZero(), "stock %s, want 0", got.Stock)
}

func TestOrderService_ConcurrentPlacement_StockAccounting(t *testing.T) {
	const buyers = 20

	product := entities.Product{
		ID:    "yogurt-id",
		Name:  "Yogurt",
		Price: decimal.NewFromInt(80),
		Stock: decimal.NewFromInt(12),
	}
	svc, store := newMemoryOrderService(t, product)

	var eg errgroup.Group
	results := make([]error, buyers)
	for i := range results {
		i := i
		eg.Go(func() error {
			_, err := svc.PlaceOrder(context.Background(), "user-1", []entities.BasketLine{
				{ProductID: "yogurt-id", Quantity: decimal.NewFromInt(1)},
			})
			results[i] = err
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}

	// every successful placement consumed exactly one unit
	got, err := store.GetProduct(context.Background(), "yogurt-id")
	require.NoError(t, err)
	want := decimal.NewFromInt(12 - int64(succeeded))
	assert.True(t, got.Stock.Equal(want), "stock %s, want %s", got.Stock, want)
	assert.Equal(t, 12, succeeded)
}

func TestOrderService_PlaceOrder_NoPartialDecrement(t *testing.T) {
	milk := entities.Product{
		ID:    "milk-id",
		Name:  "Milk",
		Price: decimal.NewFromInt(50),
		Stock: decimal.NewFromInt(5),
	}
	cheese := entities.Product{
		ID:    "cheese-id",
		Name:  "Cheese",
		Price: decimal.NewFromInt(150),
		Stock: decimal.NewFromInt(1),
	}
	svc, store := newMemoryOrderService(t, milk, cheese)

	// the second line cannot be satisfied, so the whole placement is
	// rejected and no stock moves
	_, err := svc.PlaceOrder(context.Background(), "user-1", []entities.BasketLine{
		{ProductID: "milk-id", Quantity: decimal.NewFromInt(3)},
		{ProductID: "cheese-id", Quantity: decimal.NewFromInt(2)},
	})
	require.ErrorIs(t, err, entities.ErrInsufficientStock)

	gotMilk, err := store.GetProduct(context.Background(), "milk-id")
	require.NoError(t, err)
	assert.True(t, gotMilk.Stock.Equal(decimal.NewFromInt(5)), "milk stock %s, want 5", gotMilk.Stock)

	gotCheese, err := store.GetProduct(context.Background(), "cheese-id")
	require.NoError(t, err)
	assert.True(t, gotCheese.Stock.Equal(decimal.NewFromInt(1)), "cheese stock %s, want 1", gotCheese.Stock)
}
