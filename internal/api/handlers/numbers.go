package handlers

import (
	"net/http"

	"github.com/ndewijer/numfmt/internal/api/request"
	"github.com/ndewijer/numfmt/internal/api/response"
	"github.com/ndewijer/numfmt/internal/apperrors"
	"github.com/ndewijer/numfmt/internal/service"
	"github.com/ndewijer/numfmt/internal/validation"
)

// NumberHandler handles the two-decimal conversion endpoints.
type NumberHandler struct {
	numberService *service.NumberService
}

// NewNumberHandler creates a new NumberHandler
func NewNumberHandler(numberService *service.NumberService) *NumberHandler {
	return &NumberHandler{numberService: numberService}
}

// Round handles GET requests that round a value to two decimal places.
// The value is parsed permissively: text that is not a number converts as 0.
//
// Endpoint: GET /api/numbers/round?value=3.14159
// Response: 200 OK with model.RoundResult
// Error: 400 Bad Request if value is missing or too long
func (h *NumberHandler) Round(w http.ResponseWriter, r *http.Request) {
	q := request.ParseNumberQuery(r)
	if err := validation.ValidateStruct(q); err != nil {
		response.RespondError(w, http.StatusBadRequest, queryErrorMessage(q), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, h.numberService.Round(q.Value))
}

// Fraction handles GET requests that extract the two digits after the decimal point.
//
// Endpoint: GET /api/numbers/fraction?value=123.4
// Response: 200 OK with model.FractionResult
// Error: 400 Bad Request if value is missing or too long
// Error: 422 Unprocessable Entity if the rendering has no fractional digits
func (h *NumberHandler) Fraction(w http.ResponseWriter, r *http.Request) {
	q := request.ParseNumberQuery(r)
	if err := validation.ValidateStruct(q); err != nil {
		response.RespondError(w, http.StatusBadRequest, queryErrorMessage(q), err.Error())
		return
	}

	result, err := h.numberService.Fraction(q.Value)
	if err != nil {
		response.RespondError(w, http.StatusUnprocessableEntity, "failed to extract fractional digits", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// queryErrorMessage tells an absent value apart from one that fails the other rules.
func queryErrorMessage(q request.NumberQuery) string {
	if q.Value == "" {
		return apperrors.ErrMissingValue.Error()
	}
	return apperrors.ErrInvalidValue.Error()
}
