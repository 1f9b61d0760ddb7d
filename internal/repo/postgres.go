package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---- products ----

func (r *postgresRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "description", "price", "stock", "unit", "created_at").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return r.listProducts(ctx, false)
}

func (r *postgresRepo) ListAvailable(ctx context.Context) ([]entities.Product, error) {
	return r.listProducts(ctx, true)
}

func (r *postgresRepo) listProducts(ctx context.Context, inStockOnly bool) ([]entities.Product, error) {
	q := r.qb.Select("id", "name", "description", "price", "stock", "unit", "created_at").
		From("products").
		OrderBy("name")
	if inStockOnly {
		q = q.Where(sq.Expr("stock > 0"))
	}
	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns("id", "name", "description", "price", "stock", "unit", "created_at").
		Values(p.ID, p.Name, nullString(p.Description), p.Price, p.Stock, p.Unit, p.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", nullString(p.Description)).
		Set("price", p.Price).
		Set("stock", p.Stock).
		Set("unit", p.Unit).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, productID string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) CountProducts(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("products").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// DecrementStock subtracts qty in a single conditional UPDATE, so two
// concurrent placements can never drive stock below zero.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, qty decimal.Decimal) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("stock >= ?", qty)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *postgresRepo) RestoreStock(ctx context.Context, productID string, qty decimal.Decimal) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// ---- orders ----

// SaveOrder is idempotent: ids are generated by the caller and
// ON CONFLICT DO NOTHING swallows duplicates on retries.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("id", "user_id", "total_amount", "status", "order_date", "delivery_date").
		Values(o.ID, o.UserID, o.TotalAmount, string(o.Status), o.OrderDate, o.DeliveryDate).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "product_id", "quantity", "price", "subtotal").
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, it := range items {
		q = q.Values(it.ID, orderID, it.ProductID, it.Quantity, it.Price, it.Subtotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select("id", "user_id", "total_amount", "status", "order_date", "delivery_date").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("id", "order_id", "product_id", "quantity", "price", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	q := r.qb.Select("id", "user_id", "total_amount", "status", "order_date", "delivery_date").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("order_date DESC")
	return r.listOrders(ctx, q)
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	q := r.qb.Select("id", "user_id", "total_amount", "status", "order_date", "delivery_date").
		From("orders").
		OrderBy("order_date DESC")
	return r.listOrders(ctx, q)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	q := r.qb.Select("id", "user_id", "total_amount", "status", "order_date", "delivery_date").
		From("orders").
		OrderBy("order_date DESC").
		Limit(uint64(limit))
	return r.listOrders(ctx, q)
}

func (r *postgresRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select("id", "order_id", "product_id", "quantity", "price", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) CountItemsByProduct(ctx context.Context, productID string) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("order_items").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count order items: %w", err)
	}
	return count, nil
}

// ---- users ----

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns("id", "username", "email", "password_hash", "phone", "address", "is_admin", "created_at").
		Values(u.ID, u.Username, u.Email, u.PasswordHash, nullString(u.Phone), nullString(u.Address), u.IsAdmin, u.CreatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) getUser(ctx context.Context, pred any) (entities.User, error) {
	query, args := r.qb.Select("id", "username", "email", "password_hash", "phone", "address", "is_admin", "created_at").
		From("users").
		Where(pred).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query, args := r.qb.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepo) ListCustomers(ctx context.Context) ([]entities.User, error) {
	query, args := r.qb.Select("id", "username", "email", "password_hash", "phone", "address", "is_admin", "created_at").
		From("users").
		Where(sq.Eq{"is_admin": false}).
		OrderBy("created_at DESC").
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

func (r *postgresRepo) CountCustomers(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"is_admin": false}).
		MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// ---- sessions ----

func (r *postgresRepo) CreateSession(ctx context.Context, s entities.Session) error {
	query, args := r.qb.Insert("sessions").
		Columns("token", "user_id", "created_at", "expires_at").
		Values(s.Token, s.UserID, s.CreatedAt, s.ExpiresAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetSession(ctx context.Context, token string) (entities.Session, error) {
	query, args := r.qb.Select("token", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(sq.Eq{"token": token}).
		MustSql()

	var session Session
	err := r.getContext(ctx, &session, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Session{}, entities.ErrSessionNotFound
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return SessionToEntity(session), nil
}

func (r *postgresRepo) DeleteSession(ctx context.Context, token string) error {
	query, args := r.qb.Delete("sessions").
		Where(sq.Eq{"token": token}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ---- reports ----

func (r *postgresRepo) CountOrders(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("orders").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(total_amount), 0)").From("orders").MustSql()

	var total decimal.Decimal
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) DailySales(ctx context.Context) ([]entities.DailySales, error) {
	query, args := r.qb.Select("order_date::date AS day", "SUM(total_amount) AS total").
		From("orders").
		GroupBy("order_date::date").
		OrderBy("day").
		MustSql()

	var rows []DailySales
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select daily sales: %w", err)
	}

	result := make([]entities.DailySales, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.DailySales{Day: row.Day, Total: row.Total})
	}
	return result, nil
}

// ---- helpers ----

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
