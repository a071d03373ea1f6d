package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/numfmt/internal/model"
	"github.com/ndewijer/numfmt/internal/repository"
)

// ShopService handles read operations on the shop database.
type ShopService struct {
	shopRepo *repository.ShopRepository
}

// NewShopService creates a new ShopService.
func NewShopService(shopRepo *repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetProducts returns every product.
func (s *ShopService) GetProducts(ctx context.Context) ([]model.Product, error) {
	return s.shopRepo.ListProducts(ctx)
}

// GetCustomers returns every customer.
func (s *ShopService) GetCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.shopRepo.ListCustomers(ctx)
}

// GetOrders returns every order.
func (s *ShopService) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.shopRepo.ListOrders(ctx)
}

// GetOrder returns a single order.
func (s *ShopService) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	return s.shopRepo.GetOrder(ctx, orderID)
}

// GetOrderTotals returns the cost of each order. Totals are recomputed in decimal
// arithmetic from the stored price, and both price and total are rounded to cents
// half away from zero.
func (s *ShopService) GetOrderTotals(ctx context.Context) ([]model.OrderTotal, error) {
	totals, err := s.shopRepo.OrderTotals(ctx)
	if err != nil {
		return nil, err
	}

	for i := range totals {
		price := decimal.NewFromFloat(totals[i].Price)
		totals[i].Total = price.Mul(decimal.NewFromInt(totals[i].Quantity)).Round(2).InexactFloat64()
		totals[i].Price = price.Round(2).InexactFloat64()
	}
	return totals, nil
}
