package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/middleware"
	"github.com/SergeyBogomolovv/dairy-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, lines []entities.BasketLine) (entities.Order, error)
	GetOrder(ctx context.Context, auth entities.AuthContext, orderID string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
}

type Storefront interface {
	ListAvailable(ctx context.Context) ([]entities.Product, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	catalog  Storefront
	auth     func(http.Handler) http.Handler
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, catalog Storefront, auth func(http.Handler) http.Handler) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		catalog:  catalog,
		auth:     auth,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
	})
}

func (h *OrderHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListAvailable(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	auth, ok := middleware.AuthFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	order, err := h.svc.PlaceOrder(ctx, auth.UserID, BasketLinesToEntity(req.Items))
	orderPlacementDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.writePlacementError(ctx, w, err)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, PlaceOrderResponse{
		OrderID:      order.ID,
		TotalAmount:  order.TotalAmount,
		Status:       string(order.Status),
		DeliveryDate: order.DeliveryDate,
	}, http.StatusCreated)
}

func (h *OrderHandler) writePlacementError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrEmptyBasket):
		orderFailures.WithLabelValues("empty_basket").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidQuantity):
		orderFailures.WithLabelValues("invalid_quantity").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductNotFound):
		orderFailures.WithLabelValues("product_not_found").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		orderFailures.WithLabelValues("insufficient_stock").Inc()
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrStockConflict):
		orderFailures.WithLabelValues("stock_conflict").Inc()
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		orderFailures.WithLabelValues("internal").Inc()
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	auth, ok := middleware.AuthFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.ListUserOrders(ctx, auth.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	auth, ok := middleware.AuthFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, auth, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
