package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/shopspring/decimal"
)

// MemoryRepo is the in-memory store adapter. Every method applies its
// whole effect under one lock, so DecrementStock is atomic with respect
// to concurrent callers without any native transactions.
type MemoryRepo struct {
	mu           sync.RWMutex
	products     map[string]entities.Product
	orders       map[string]entities.Order
	itemsByOrder map[string][]entities.OrderItem
	users        map[string]entities.User
	sessions     map[string]entities.Session
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:     make(map[string]entities.Product),
		orders:       make(map[string]entities.Order),
		itemsByOrder: make(map[string][]entities.OrderItem),
		users:        make(map[string]entities.User),
		sessions:     make(map[string]entities.Session),
	}
}

// ---- products ----

func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return product, nil
}

func (r *MemoryRepo) ListProducts(_ context.Context) ([]entities.Product, error) {
	return r.listProducts(false), nil
}

func (r *MemoryRepo) ListAvailable(_ context.Context) ([]entities.Product, error) {
	return r.listProducts(true), nil
}

func (r *MemoryRepo) listProducts(inStockOnly bool) []entities.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Product, 0, len(r.products))
	for _, p := range r.products {
		if inStockOnly && !p.Stock.IsPositive() {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (r *MemoryRepo) CreateProduct(_ context.Context, p entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *MemoryRepo) UpdateProduct(_ context.Context, p entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return entities.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *MemoryRepo) DeleteProduct(_ context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return entities.ErrProductNotFound
	}
	delete(r.products, productID)
	return nil
}

func (r *MemoryRepo) CountProducts(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryRepo) DecrementStock(_ context.Context, productID string, qty decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok || product.Stock.LessThan(qty) {
		return entities.ErrInsufficientStock
	}
	product.Stock = product.Stock.Sub(qty)
	r.products[productID] = product
	return nil
}

func (r *MemoryRepo) RestoreStock(_ context.Context, productID string, qty decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	product.Stock = product.Stock.Add(qty)
	r.products[productID] = product
	return nil
}

// ---- orders ----

func (r *MemoryRepo) SaveOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return nil
	}
	o.Items = nil
	r.orders[o.ID] = o
	return nil
}

func (r *MemoryRepo) SaveItems(_ context.Context, orderID string, items []entities.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.itemsByOrder[orderID] = append([]entities.OrderItem(nil), items...)
	return nil
}

func (r *MemoryRepo) GetOrderByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	order.Items = append([]entities.OrderItem(nil), r.itemsByOrder[orderID]...)
	return order, nil
}

func (r *MemoryRepo) ListOrdersByUser(_ context.Context, userID string) ([]entities.Order, error) {
	return r.listOrders(func(o entities.Order) bool { return o.UserID == userID }, 0), nil
}

func (r *MemoryRepo) ListOrders(_ context.Context) ([]entities.Order, error) {
	return r.listOrders(nil, 0), nil
}

func (r *MemoryRepo) LatestOrders(_ context.Context, limit int) ([]entities.Order, error) {
	return r.listOrders(nil, limit), nil
}

func (r *MemoryRepo) listOrders(filter func(entities.Order) bool, limit int) []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter != nil && !filter(o) {
			continue
		}
		o.Items = append([]entities.OrderItem(nil), r.itemsByOrder[o.ID]...)
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderDate.After(result[j].OrderDate) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (r *MemoryRepo) UpdateOrderStatus(_ context.Context, orderID string, status entities.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	order.Status = status
	r.orders[orderID] = order
	return nil
}

func (r *MemoryRepo) CountItemsByProduct(_ context.Context, productID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, items := range r.itemsByOrder {
		for _, it := range items {
			if it.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}

// ---- users ----

func (r *MemoryRepo) CreateUser(_ context.Context, u entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return entities.ErrUserExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *MemoryRepo) GetUserByUsername(_ context.Context, username string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entities.User{}, entities.ErrUserNotFound
}

func (r *MemoryRepo) GetUserByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return entities.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	r.users[userID] = user
	return nil
}

func (r *MemoryRepo) ListCustomers(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		if !u.IsAdmin {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryRepo) CountCustomers(ctx context.Context) (int64, error) {
	users, err := r.ListCustomers(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

// ---- sessions ----

func (r *MemoryRepo) CreateSession(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Token] = s
	return nil
}

func (r *MemoryRepo) GetSession(_ context.Context, token string) (entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return entities.Session{}, entities.ErrSessionNotFound
	}
	return session, nil
}

func (r *MemoryRepo) DeleteSession(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// ---- reports ----

func (r *MemoryRepo) CountOrders(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *MemoryRepo) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}

func (r *MemoryRepo) DailySales(_ context.Context) ([]entities.DailySales, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDay := make(map[time.Time]decimal.Decimal)
	for _, o := range r.orders {
		day := o.OrderDate.Truncate(24 * time.Hour)
		byDay[day] = byDay[day].Add(o.TotalAmount)
	}

	result := make([]entities.DailySales, 0, len(byDay))
	for day, total := range byDay {
		result = append(result, entities.DailySales{Day: day, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result, nil
}
