package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/numfmt/internal/model"
)

// CreateProduct inserts a product and returns it.
func CreateProduct(t *testing.T, db *sql.DB, id int64, name string, price float64) model.Product {
	t.Helper()

	_, err := db.Exec(`INSERT INTO products (product_id, name, price) VALUES (?, ?, ?)`, id, name, price)
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	return model.Product{ID: id, Name: name, Price: price}
}

// CreateCustomer inserts a customer and returns it.
func CreateCustomer(t *testing.T, db *sql.DB, id int64, city string) model.Customer {
	t.Helper()

	_, err := db.Exec(`INSERT INTO customers (customer_id, city) VALUES (?, ?)`, id, city)
	if err != nil {
		t.Fatalf("Failed to create customer: %v", err)
	}
	return model.Customer{ID: id, City: city}
}

// CreateOrder inserts an order and returns it.
func CreateOrder(t *testing.T, db *sql.DB, id, customerID, productID, quantity int64) model.Order {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO orders (order_id, customer_id, product_id, quantity) VALUES (?, ?, ?, ?)`,
		id, customerID, productID, quantity,
	)
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	return model.Order{ID: id, CustomerID: customerID, ProductID: productID, Quantity: quantity}
}
