package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/shopspring/decimal"
)

const recentOrdersLimit = 10

type ReportRepo interface {
	CountProducts(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	DailySales(ctx context.Context) ([]entities.DailySales, error)
	LatestOrders(ctx context.Context, limit int) ([]entities.Order, error)
}

type reportService struct {
	logger *slog.Logger
	repo   ReportRepo
}

func NewReportService(logger *slog.Logger, repo ReportRepo) *reportService {
	return &reportService{
		logger: logger.With(slog.String("service", "report")),
		repo:   repo,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (entities.DashboardStats, error) {
	var stats entities.DashboardStats
	var err error

	if stats.TotalProducts, err = s.repo.CountProducts(ctx); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.TotalCustomers, err = s.repo.CountCustomers(ctx); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count customers: %w", err)
	}
	if stats.TotalOrders, err = s.repo.CountOrders(ctx); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.TotalRevenue, err = s.repo.TotalRevenue(ctx); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if stats.RecentOrders, err = s.repo.LatestOrders(ctx, recentOrdersLimit); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to list recent orders: %w", err)
	}

	return stats, nil
}

func (s *reportService) SalesReport(ctx context.Context) ([]entities.DailySales, error) {
	sales, err := s.repo.DailySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily sales: %w", err)
	}
	return sales, nil
}
