package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/numfmt/internal/api/request"
	"github.com/ndewijer/numfmt/internal/api/response"
	"github.com/ndewijer/numfmt/internal/apperrors"
	"github.com/ndewijer/numfmt/internal/service"
	"github.com/ndewijer/numfmt/internal/validation"
)

// ShopHandler handles read-only requests against the shop database.
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Products handles GET /api/shop/products
func (h *ShopHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.shopService.GetProducts(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveShopData.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, products)
}

// Customers handles GET /api/shop/customers
func (h *ShopHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.shopService.GetCustomers(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveShopData.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, customers)
}

// Orders handles GET /api/shop/orders
func (h *ShopHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.shopService.GetOrders(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveShopData.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, orders)
}

// Order handles GET /api/shop/orders/{orderId}
//
// Error: 400 Bad Request if orderId is not a positive integer
// Error: 404 Not Found if the order does not exist
func (h *ShopHandler) Order(w http.ResponseWriter, r *http.Request) {
	p := request.ParseOrderPath(r)
	if err := validation.ValidateStruct(p); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidOrderID.Error(), err.Error())
		return
	}

	order, err := h.shopService.GetOrder(r.Context(), p.OrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveShopData.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, order)
}

// OrderTotals handles GET /api/shop/orders/totals
func (h *ShopHandler) OrderTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.shopService.GetOrderTotals(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveShopData.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, totals)
}
