package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

type DashboardStats struct {
	TotalProducts  int64
	TotalCustomers int64
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
	RecentOrders   []Order
}
