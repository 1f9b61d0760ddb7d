package handler

import (
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unit"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=255"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unit"`
}

type BasketLine struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

type PlaceOrderRequest struct {
	Items []BasketLine `json:"items" validate:"required,min=1,dive"`
}

type PlaceOrderResponse struct {
	OrderID      string          `json:"order_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	DeliveryDate time.Time       `json:"delivery_date"`
}

type Order struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate time.Time       `json:"delivery_date"`
	Items        []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
}

type Dashboard struct {
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	RecentOrders   []Order         `json:"recent_orders"`
}

type DailySales struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
	}
}

func ProductRequestToEntity(req ProductRequest) entities.Product {
	unit := req.Unit
	if unit == "" {
		unit = "Liter"
	}
	return entities.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Unit:        unit,
	}
}

func BasketLinesToEntity(lines []BasketLine) []entities.BasketLine {
	result := make([]entities.BasketLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, entities.BasketLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return result
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:           o.ID,
		UserID:       o.UserID,
		TotalAmount:  o.TotalAmount,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
	}
	if len(o.Items) > 0 {
		order.Items = make([]OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			order.Items = append(order.Items, OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
				Subtotal:  it.Subtotal,
			})
		}
	}
	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func DailySalesToJSON(sales []entities.DailySales) []DailySales {
	result := make([]DailySales, 0, len(sales))
	for _, s := range sales {
		result = append(result, DailySales{
			Day:   s.Day.Format("2006-01-02"),
			Total: s.Total,
		})
	}
	return result
}
