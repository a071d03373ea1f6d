package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/numfmt/internal/apperrors"
	"github.com/ndewijer/numfmt/internal/model"
)

// ShopRepository provides data access methods for the products, customers and orders tables.
type ShopRepository struct {
	db *sql.DB
}

// NewShopRepository creates a new ShopRepository with the provided database connection.
func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// ListProducts returns all products ordered by id.
func (r *ShopRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `
          SELECT product_id, name, price
          FROM products
          ORDER BY product_id
      `
	return queryAll(ctx, r.db, query, "products", func(rows *sql.Rows) (model.Product, error) {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price)
		return p, err
	})
}

// ListCustomers returns all customers ordered by id.
func (r *ShopRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	query := `
          SELECT customer_id, city
          FROM customers
          ORDER BY customer_id
      `
	return queryAll(ctx, r.db, query, "customers", func(rows *sql.Rows) (model.Customer, error) {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.City)
		return c, err
	})
}

// ListOrders returns all orders ordered by id.
func (r *ShopRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	query := `
          SELECT order_id, customer_id, product_id, quantity
          FROM orders
          ORDER BY order_id
      `
	return queryAll(ctx, r.db, query, "orders", func(rows *sql.Rows) (model.Order, error) {
		var o model.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity)
		return o, err
	})
}

// GetOrder returns the order with the given id, or apperrors.ErrOrderNotFound.
func (r *ShopRepository) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	query := `
          SELECT order_id, customer_id, product_id, quantity
          FROM orders
          WHERE order_id = ?
      `
	var o model.Order

	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to query order: %w", err)
	}

	return o, nil
}

// OrderTotals joins every order with its product and computes quantity * price.
// Orders whose product no longer exists are left out.
func (r *ShopRepository) OrderTotals(ctx context.Context) ([]model.OrderTotal, error) {
	query := `
          SELECT o.order_id, p.name, o.quantity, p.price,
                 (o.quantity * p.price) AS total_price
          FROM orders o
          JOIN products p ON o.product_id = p.product_id
          ORDER BY o.order_id
      `
	return queryAll(ctx, r.db, query, "order totals", func(rows *sql.Rows) (model.OrderTotal, error) {
		var t model.OrderTotal
		err := rows.Scan(&t.OrderID, &t.ProductName, &t.Quantity, &t.Price, &t.Total)
		return t, err
	})
}

// queryAll runs query and scans every row with scan. It returns an empty slice, not nil,
// when no rows match.
func queryAll[T any](ctx context.Context, db *sql.DB, query, table string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	results := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s results: %w", table, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return results, nil
}
