package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListAvailable(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	CountProducts(ctx context.Context) (int64, error)
}

type OrderItemCounter interface {
	CountItemsByProduct(ctx context.Context, productID string) (int64, error)
}

type catalogService struct {
	logger   *slog.Logger
	products ProductRepo
	items    OrderItemCounter
}

func NewCatalogService(logger *slog.Logger, products ProductRepo, items OrderItemCounter) *catalogService {
	return &catalogService{
		logger:   logger.With(slog.String("service", "catalog")),
		products: products,
		items:    items,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	return s.products.GetProduct(ctx, productID)
}

// ListAvailable returns products with stock left, for the storefront.
func (s *catalogService) ListAvailable(ctx context.Context) ([]entities.Product, error) {
	return s.products.ListAvailable(ctx)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if p.Price.IsNegative() || p.Stock.IsNegative() {
		return entities.Product{}, entities.ErrInvalidProduct
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug("product created", slog.String("product_id", p.ID), slog.String("name", p.Name))
	return p, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, p entities.Product) error {
	if p.Price.IsNegative() || p.Stock.IsNegative() {
		return entities.ErrInvalidProduct
	}
	return s.products.UpdateProduct(ctx, p)
}

// DeleteProduct refuses to delete a product referenced by order items,
// deleting it would corrupt historical orders.
func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	count, err := s.items.CountItemsByProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to check order items: %w", err)
	}
	if count > 0 {
		return entities.ErrProductReferenced
	}
	return s.products.DeleteProduct(ctx, productID)
}

// Seed loads the starter dairy catalog on an empty store.
func (s *catalogService) Seed(ctx context.Context) error {
	count, err := s.products.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []entities.Product{
		{Name: "Milk (1L)", Description: "Fresh whole milk", Price: decimal.NewFromInt(50), Stock: decimal.NewFromInt(100), Unit: "Liter"},
		{Name: "Yogurt (500ml)", Description: "Creamy yogurt", Price: decimal.NewFromInt(80), Stock: decimal.NewFromInt(75), Unit: "ml"},
		{Name: "Buttermilk (1L)", Description: "Fresh buttermilk", Price: decimal.NewFromInt(40), Stock: decimal.NewFromInt(50), Unit: "Liter"},
		{Name: "Paneer (500g)", Description: "Fresh cottage cheese", Price: decimal.NewFromInt(250), Stock: decimal.NewFromInt(30), Unit: "grams"},
		{Name: "Ghee (500ml)", Description: "Pure clarified butter", Price: decimal.NewFromInt(500), Stock: decimal.NewFromInt(20), Unit: "ml"},
		{Name: "Cheese (200g)", Description: "Processed cheese", Price: decimal.NewFromInt(150), Stock: decimal.NewFromInt(40), Unit: "grams"},
	}
	for _, p := range samples {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}

	s.logger.Info("sample products created", slog.Int("count", len(samples)))
	return nil
}
