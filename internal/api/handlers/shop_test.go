package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/numfmt/internal/model"
	"github.com/ndewijer/numfmt/internal/testutil"
)

func TestShopHandler_Lists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewShopHandler(testutil.NewTestShopService(t, db))

	t.Run("products", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Products(w, httptest.NewRequest(http.MethodGet, "/api/shop/products", nil))

		var products []model.Product
		if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if w.Code != http.StatusOK || len(products) != 3 {
			t.Errorf("Expected 200 with 3 products, got %d with %d", w.Code, len(products))
		}
	})

	t.Run("customers", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Customers(w, httptest.NewRequest(http.MethodGet, "/api/shop/customers", nil))

		var customers []model.Customer
		if err := json.NewDecoder(w.Body).Decode(&customers); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(customers) != 3 {
			t.Errorf("Expected 3 customers, got %d", len(customers))
		}
	})

	t.Run("orders", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Orders(w, httptest.NewRequest(http.MethodGet, "/api/shop/orders", nil))

		var orders []model.Order
		if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(orders) != 4 {
			t.Errorf("Expected 4 orders, got %d", len(orders))
		}
	})

	t.Run("order totals", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.OrderTotals(w, httptest.NewRequest(http.MethodGet, "/api/shop/orders/totals", nil))

		var totals []model.OrderTotal
		if err := json.NewDecoder(w.Body).Decode(&totals); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(totals) != 4 || totals[0].Total != 2000 {
			t.Errorf("Unexpected totals: %+v", totals)
		}
	})
}

func TestShopHandler_Order(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewShopHandler(testutil.NewTestShopService(t, db))

	t.Run("returns the order", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/shop/orders/2", map[string]string{"orderId": "2"})
		w := httptest.NewRecorder()

		handler.Order(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var order model.Order
		if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if order.ProductID != 3 {
			t.Errorf("Expected product 3, got %d", order.ProductID)
		}
	})

	t.Run("returns 404 for unknown orders", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/shop/orders/99", map[string]string{"orderId": "99"})
		w := httptest.NewRecorder()

		handler.Order(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("returns 400 for non-numeric ids", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/shop/orders/abc", map[string]string{"orderId": "abc"})
		w := httptest.NewRecorder()

		handler.Order(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestShopHandler_DatabaseErrors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewShopHandler(testutil.NewTestShopService(t, db))
	db.Close()

	w := httptest.NewRecorder()
	handler.OrderTotals(w, httptest.NewRequest(http.MethodGet, "/api/shop/orders/totals", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
}
