// shopdb recreates the shop database, prints every table and then the total
// cost of each order.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ndewijer/numfmt/internal/config"
	"github.com/ndewijer/numfmt/internal/database"
	"github.com/ndewijer/numfmt/internal/logging"
	"github.com/ndewijer/numfmt/internal/numfmt"
	"github.com/ndewijer/numfmt/internal/repository"
	"github.com/ndewijer/numfmt/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	db, err := database.Recreate(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	log.WithField("path", cfg.Database.Path).Debug("database recreated")

	shopService := service.NewShopService(repository.NewShopRepository(db))
	if err := run(ctx, shopService, os.Stdout); err != nil {
		db.Close()
		log.Fatalf("shopdb: %v", err)
	}
}

func run(ctx context.Context, shop *service.ShopService, out io.Writer) error {
	fmt.Fprintln(out, "Database created and populated.")

	products, err := shop.GetProducts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nproducts:")
	for _, p := range products {
		fmt.Fprintf(out, "(%d, %s, %s)\n", p.ID, p.Name, numfmt.FormatFixed(p.Price))
	}

	customers, err := shop.GetCustomers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\ncustomers:")
	for _, c := range customers {
		fmt.Fprintf(out, "(%d, %s)\n", c.ID, c.City)
	}

	orders, err := shop.GetOrders(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\norders:")
	for _, o := range orders {
		fmt.Fprintf(out, "(%d, %d, %d, %d)\n", o.ID, o.CustomerID, o.ProductID, o.Quantity)
	}

	totals, err := shop.GetOrderTotals(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(out, "Order totals:")
	for _, t := range totals {
		_, err := fmt.Fprintf(out, "Order %d: %s x%d = %s\n", t.OrderID, t.ProductName, t.Quantity, numfmt.FormatFixed(t.Total))
		if err != nil {
			return fmt.Errorf("failed to write order totals: %w", err)
		}
	}
	return nil
}
