package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/middleware"
	"github.com/SergeyBogomolovv/dairy-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type OrderAdminService interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
}

type UserLister interface {
	ListCustomers(ctx context.Context) ([]entities.User, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (entities.DashboardStats, error)
	SalesReport(ctx context.Context) ([]entities.DailySales, error)
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  CatalogService
	orders   OrderAdminService
	users    UserLister
	reports  ReportService
	auth     func(http.Handler) http.Handler
}

func NewAdminHandler(
	logger *slog.Logger,
	catalog CatalogService,
	orders OrderAdminService,
	users UserLister,
	reports ReportService,
	auth func(http.Handler) http.Handler,
) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		catalog:  catalog,
		orders:   orders,
		users:    users,
		reports:  reports,
		auth:     auth,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(middleware.RequireAdmin)

		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
		r.Put("/products/{product_id}", h.UpdateProduct)
		r.Delete("/products/{product_id}", h.DeleteProduct)

		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{order_id}/status", h.UpdateOrderStatus)

		r.Get("/users", h.ListUsers)

		r.Get("/reports/dashboard", h.Dashboard)
		r.Get("/reports/sales", h.SalesReport)
	})
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListProducts(ctx)
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

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.CreateProduct(ctx, ProductRequestToEntity(req))

	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product := ProductRequestToEntity(req)
	product.ID = productID
	err := h.catalog.UpdateProduct(ctx, product)

	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidProduct):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	err := h.catalog.DeleteProduct(ctx, productID)

	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductReferenced):
		utils.WriteError(w, "product is referenced by existing orders", http.StatusConflict)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to delete product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.orders.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.ListCustomers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]User, 0, len(users))
	for _, u := range users {
		result = append(result, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.reports.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build dashboard", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, Dashboard{
		TotalProducts:  stats.TotalProducts,
		TotalCustomers: stats.TotalCustomers,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		RecentOrders:   OrdersEntityToJSON(stats.RecentOrders),
	}, http.StatusOK)
}

func (h *AdminHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := h.reports.SalesReport(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build sales report", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, DailySalesToJSON(sales), http.StatusOK)
}
