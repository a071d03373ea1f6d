package request

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// NumberQuery carries the value query parameter of the number endpoints.
type NumberQuery struct {
	Value string `validate:"required,max=512"`
}

// ParseNumberQuery reads the value query parameter.
func ParseNumberQuery(r *http.Request) NumberQuery {
	return NumberQuery{Value: r.URL.Query().Get("value")}
}

// OrderPath carries the orderId URL parameter.
type OrderPath struct {
	OrderID int64 `validate:"gt=0"`
}

// ParseOrderPath reads the orderId URL parameter. Unparsable ids become 0 and fail validation.
func ParseOrderPath(r *http.Request) OrderPath {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		id = 0
	}
	return OrderPath{OrderID: id}
}
