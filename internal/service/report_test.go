package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/repo"
	"github.com/SergeyBogomolovv/dairy-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewReportService(logger, store)

	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateProduct(ctx, entities.Product{
		ID: "milk-id", Name: "Milk", Price: decimal.NewFromInt(50), Stock: decimal.NewFromInt(100),
	}))
	require.NoError(t, store.CreateUser(ctx, entities.User{
		ID: "user-1", Username: "alice", Email: "alice@example.com",
	}))
	require.NoError(t, store.CreateUser(ctx, entities.User{
		ID: "admin-1", Username: "admin", Email: "admin@example.com", IsAdmin: true,
	}))
	require.NoError(t, store.SaveOrder(ctx, entities.Order{
		ID: "order-1", UserID: "user-1", TotalAmount: decimal.NewFromInt(100),
		Status: entities.StatusPending, OrderDate: day,
	}))
	require.NoError(t, store.SaveOrder(ctx, entities.Order{
		ID: "order-2", UserID: "user-1", TotalAmount: decimal.NewFromInt(250),
		Status: entities.StatusCompleted, OrderDate: day.Add(24 * time.Hour),
	}))

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(350)),
		"revenue %s, want 350", stats.TotalRevenue)
	require.Len(t, stats.RecentOrders, 2)
	// newest first
	assert.Equal(t, "order-2", stats.RecentOrders[0].ID)
}

func TestReportService_SalesReport(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewReportService(logger, store)

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveOrder(ctx, entities.Order{
		ID: "order-1", UserID: "user-1", TotalAmount: decimal.NewFromInt(100),
		Status: entities.StatusPending, OrderDate: day.Add(9 * time.Hour),
	}))
	require.NoError(t, store.SaveOrder(ctx, entities.Order{
		ID: "order-2", UserID: "user-1", TotalAmount: decimal.NewFromInt(50),
		Status: entities.StatusPending, OrderDate: day.Add(18 * time.Hour),
	}))
	require.NoError(t, store.SaveOrder(ctx, entities.Order{
		ID: "order-3", UserID: "user-1", TotalAmount: decimal.NewFromInt(40),
		Status: entities.StatusPending, OrderDate: day.Add(30 * time.Hour),
	}))

	sales, err := svc.SalesReport(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.True(t, sales[0].Day.Before(sales[1].Day))
	assert.True(t, sales[0].Total.Equal(decimal.NewFromInt(150)),
		"day one total %s, want 150", sales[0].Total)
	assert.True(t, sales[1].Total.Equal(decimal.NewFromInt(40)),
		"day two total %s, want 40", sales[1].Total)
}
