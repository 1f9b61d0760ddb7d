package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/pkg/trm"
	"github.com/SergeyBogomolovv/dairy-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogStore mutates product stock only through the conditional
// DecrementStock primitive, which must be atomic with respect to
// concurrent callers on the same product.
type CatalogStore interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	// DecrementStock subtracts qty only if enough stock remains,
	// otherwise returns entities.ErrInsufficientStock.
	DecrementStock(ctx context.Context, productID string, qty decimal.Decimal) error
	RestoreStock(ctx context.Context, productID string, qty decimal.Decimal) error
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order entities.Order) error
}

const deliveryLead = 24 * time.Hour

var persistRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogStore
	orders    OrderRepo
	cache     Cache
	notifier  OrderNotifier
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog CatalogStore,
	orders OrderRepo,
	cache Cache,
	notifier OrderNotifier,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		catalog:   catalog,
		orders:    orders,
		cache:     cache,
		notifier:  notifier,
	}
}

// PlaceOrder validates the basket against current stock, reserves the stock
// and persists the order. Either every decrement and the order insert take
// effect together, or none of them do.
func (s *orderService) PlaceOrder(ctx context.Context, userID string, lines []entities.BasketLine) (entities.Order, error) {
	if len(lines) == 0 {
		return entities.Order{}, entities.ErrEmptyBasket
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		Status:       entities.StatusPending,
		OrderDate:    now,
		DeliveryDate: now.Add(deliveryLead),
		TotalAmount:  decimal.Zero,
	}

	for _, line := range lines {
		if !line.Quantity.IsPositive() {
			return entities.Order{}, fmt.Errorf("%w: product %s", entities.ErrInvalidQuantity, line.ProductID)
		}

		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			return entities.Order{}, &entities.ProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to get product: %w", err)
		}
		if product.Stock.LessThan(line.Quantity) {
			return entities.Order{}, &entities.InsufficientStockError{
				ProductID: product.ID,
				Available: product.Stock,
				Requested: line.Quantity,
			}
		}

		// price is snapshotted here, later catalog changes must not
		// affect this order
		subtotal := product.Price.Mul(line.Quantity)
		order.TotalAmount = order.TotalAmount.Add(subtotal)
		order.Items = append(order.Items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
		})
	}

	reserved, err := s.reserveStock(ctx, lines)
	if err != nil {
		s.releaseStock(ctx, reserved)
		return entities.Order{}, err
	}

	fn := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			return nil
		})
	}
	if err := utils.Retry(persistRetry, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		// the ledger write failed after stock was reserved, give it back
		s.releaseStock(ctx, reserved)
		return entities.Order{}, err
	}

	s.logger.Debug("order placed",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.String("total", order.TotalAmount.String()),
	)

	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		s.logger.Error("failed to publish order event",
			slog.Any("error", err), slog.String("order_id", order.ID))
	}

	return order, nil
}

// reserveStock applies conditional decrements line by line and reports which
// ones took effect, so that the caller can undo exactly those on failure.
func (s *orderService) reserveStock(ctx context.Context, lines []entities.BasketLine) ([]entities.BasketLine, error) {
	applied := make([]entities.BasketLine, 0, len(lines))
	for _, line := range lines {
		if err := s.catalog.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			if errors.Is(err, entities.ErrInsufficientStock) {
				// the read check saw enough stock, so a concurrent
				// placement won the race
				return applied, fmt.Errorf("%w: product %s", entities.ErrStockConflict, line.ProductID)
			}
			return applied, fmt.Errorf("failed to decrement stock: %w", err)
		}
		applied = append(applied, line)
	}
	return applied, nil
}

func (s *orderService) releaseStock(ctx context.Context, applied []entities.BasketLine) {
	// the reservation must be undone even when the request context is
	// already dead, otherwise stock stays decremented with no order
	ctx = context.WithoutCancel(ctx)
	for _, line := range applied {
		if err := s.catalog.RestoreStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.logger.Error("failed to restore stock",
				slog.Any("error", err),
				slog.String("product_id", line.ProductID),
				slog.String("quantity", line.Quantity.String()),
			)
		}
	}
}

// GetOrder returns the order if the caller owns it or is an admin.
// Foreign orders are reported as not found.
func (s *orderService) GetOrder(ctx context.Context, auth entities.AuthContext, orderID string) (entities.Order, error) {
	order, err := s.getOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !auth.IsAdmin && order.UserID != auth.UserID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) getOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies an admin status change. Pending orders may be
// completed or cancelled, completed and cancelled orders are final.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	if !status.Valid() {
		return entities.ErrInvalidStatus
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidStatus, order.Status, status)
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	s.cache.Remove(orderID)
	return nil
}
