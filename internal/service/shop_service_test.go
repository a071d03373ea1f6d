package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/numfmt/internal/apperrors"
	"github.com/ndewijer/numfmt/internal/testutil"
)

// TestShopService_SeedData tests that the migrated database carries the seed rows.
//
// WHY: The shop tool prints the seeded tables verbatim. If a migration drops or
// reorders rows, the printed report changes silently.
func TestShopService_SeedData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestShopService(t, db)
	ctx := context.Background()

	products, err := svc.GetProducts(ctx)
	if err != nil {
		t.Fatalf("GetProducts() returned unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(products))
	}
	if products[0].Name != "Флешка" || products[0].Price != 1000 {
		t.Errorf("Unexpected first product: %+v", products[0])
	}

	customers, err := svc.GetCustomers(ctx)
	if err != nil {
		t.Fatalf("GetCustomers() returned unexpected error: %v", err)
	}
	if len(customers) != 3 || customers[1].City != "Самара" {
		t.Errorf("Unexpected customers: %+v", customers)
	}

	orders, err := svc.GetOrders(ctx)
	if err != nil {
		t.Fatalf("GetOrders() returned unexpected error: %v", err)
	}
	if len(orders) != 4 {
		t.Errorf("Expected 4 orders, got %d", len(orders))
	}
}

// TestShopService_GetOrderTotals tests the order cost report.
//
// WHY: Totals are the only computed values in the shop report; they must be
// quantity times price for every order, in order id sequence.
func TestShopService_GetOrderTotals(t *testing.T) {
	t.Run("computes totals for the seed data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestShopService(t, db)

		totals, err := svc.GetOrderTotals(context.Background())
		if err != nil {
			t.Fatalf("GetOrderTotals() returned unexpected error: %v", err)
		}

		want := []float64{2000, 5000, 2500, 3000}
		if len(totals) != len(want) {
			t.Fatalf("Expected %d totals, got %d", len(want), len(totals))
		}
		for i, total := range totals {
			if total.OrderID != int64(i+1) {
				t.Errorf("Expected order %d at position %d, got %d", i+1, i, total.OrderID)
			}
			if total.Total != want[i] {
				t.Errorf("Order %d: expected total %v, got %v", total.OrderID, want[i], total.Total)
			}
		}
	})

	t.Run("rounds fractional prices to cents", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.ClearShopData(t, db)
		testutil.CreateProduct(t, db, 1, "Cable", 3.333)
		testutil.CreateCustomer(t, db, 1, "Kazan")
		testutil.CreateOrder(t, db, 1, 1, 1, 3)
		svc := testutil.NewTestShopService(t, db)

		totals, err := svc.GetOrderTotals(context.Background())
		if err != nil {
			t.Fatalf("GetOrderTotals() returned unexpected error: %v", err)
		}
		if len(totals) != 1 {
			t.Fatalf("Expected 1 total, got %d", len(totals))
		}
		if totals[0].Price != 3.33 || totals[0].Total != 10 {
			t.Errorf("Expected price 3.33 and total 10, got %+v", totals[0])
		}
	})

	t.Run("uses decimal arithmetic for totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.ClearShopData(t, db)
		testutil.CreateProduct(t, db, 1, "Adapter", 1.005)
		testutil.CreateProduct(t, db, 2, "Sticker", 0.1)
		testutil.CreateCustomer(t, db, 1, "Kazan")
		testutil.CreateOrder(t, db, 1, 1, 1, 1)
		testutil.CreateOrder(t, db, 2, 1, 2, 3)
		svc := testutil.NewTestShopService(t, db)

		totals, err := svc.GetOrderTotals(context.Background())
		if err != nil {
			t.Fatalf("GetOrderTotals() returned unexpected error: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("Expected 2 totals, got %d", len(totals))
		}
		if totals[0].Total != 1.01 {
			t.Errorf("Expected 1.005 x1 to total 1.01, got %v", totals[0].Total)
		}
		if totals[1].Total != 0.3 {
			t.Errorf("Expected 0.1 x3 to total 0.3, got %v", totals[1].Total)
		}
	})

	t.Run("returns empty slice when there are no orders", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.ClearShopData(t, db)
		svc := testutil.NewTestShopService(t, db)

		totals, err := svc.GetOrderTotals(context.Background())
		if err != nil {
			t.Fatalf("GetOrderTotals() returned unexpected error: %v", err)
		}
		if totals == nil || len(totals) != 0 {
			t.Errorf("Expected empty non-nil slice, got %v", totals)
		}
	})

	t.Run("handles closed database connection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestShopService(t, db)
		db.Close()

		totals, err := svc.GetOrderTotals(context.Background())
		if err == nil {
			t.Error("Expected error when database is closed, got nil")
		}
		if totals != nil {
			t.Errorf("Expected nil totals on error, got %v", totals)
		}
	})
}

func TestShopService_GetOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestShopService(t, db)

	t.Run("returns an existing order", func(t *testing.T) {
		order, err := svc.GetOrder(context.Background(), 4)
		if err != nil {
			t.Fatalf("GetOrder() returned unexpected error: %v", err)
		}
		if order.CustomerID != 103 || order.Quantity != 3 {
			t.Errorf("Unexpected order: %+v", order)
		}
	})

	t.Run("returns ErrOrderNotFound for unknown ids", func(t *testing.T) {
		_, err := svc.GetOrder(context.Background(), 999)
		if !errors.Is(err, apperrors.ErrOrderNotFound) {
			t.Errorf("Expected ErrOrderNotFound, got %v", err)
		}
	})
}
