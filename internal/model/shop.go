package model

// Product is an item that can be ordered. Price is stored as DECIMAL(10, 2).
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Customer places orders.
type Customer struct {
	ID   int64  `json:"id"`
	City string `json:"city"`
}

// Order links a customer to a quantity of one product.
type Order struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
	Quantity   int64 `json:"quantity"`
}

// OrderTotal is an order joined with its product, with the total cost of the order.
type OrderTotal struct {
	OrderID     int64   `json:"orderId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}
