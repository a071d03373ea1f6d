package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndewijer/numfmt/internal/database"
	"github.com/ndewijer/numfmt/internal/testutil"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun(t *testing.T) {
	t.Run("prints tables and order totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		var out bytes.Buffer

		if err := run(context.Background(), testutil.NewTestShopService(t, db), &out); err != nil {
			t.Fatalf("run() returned unexpected error: %v", err)
		}

		for _, want := range []string{
			"(1, Флешка, 1000.00)",
			"(102, Самара)",
			"(4, 103, 1, 3)",
			"Order 1: Флешка x2 = 2000.00\n",
			"Order 2: Клавиатура x1 = 5000.00\n",
			"Order 3: Мышь x1 = 2500.00\n",
			"Order 4: Флешка x3 = 3000.00\n",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
			}
		}
	})

	t.Run("totals are ordered by order id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		var out bytes.Buffer

		if err := run(context.Background(), testutil.NewTestShopService(t, db), &out); err != nil {
			t.Fatalf("run() returned unexpected error: %v", err)
		}

		s := out.String()
		first, last := strings.Index(s, "Order 1:"), strings.Index(s, "Order 4:")
		if first < 0 || last < first {
			t.Errorf("Expected Order 1 before Order 4, got:\n%s", s)
		}
	})

	t.Run("closed database returns error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.Close()

		if err := run(context.Background(), testutil.NewTestShopService(t, db), &bytes.Buffer{}); err == nil {
			t.Error("Expected error for closed database, got nil")
		}
	})

	t.Run("write error is returned", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		if err := run(context.Background(), testutil.NewTestShopService(t, db), failingWriter{}); err == nil {
			t.Error("Expected write error, got nil")
		}
	})
}

func TestRecreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")

	for i := 0; i < 2; i++ {
		db, err := database.Recreate(context.Background(), path)
		if err != nil {
			t.Fatalf("Recreate() attempt %d returned unexpected error: %v", i+1, err)
		}

		var out bytes.Buffer
		err = run(context.Background(), testutil.NewTestShopService(t, db), &out)
		db.Close()
		if err != nil {
			t.Fatalf("run() returned unexpected error: %v", err)
		}
		if strings.Count(out.String(), "Order 1:") != 1 {
			t.Errorf("Expected seed data once after recreate, got:\n%s", out.String())
		}
	}
}
