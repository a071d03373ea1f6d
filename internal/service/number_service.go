package service

import (
	"fmt"

	"github.com/ndewijer/numfmt/internal/input"
	"github.com/ndewijer/numfmt/internal/metrics"
	"github.com/ndewijer/numfmt/internal/model"
	"github.com/ndewijer/numfmt/internal/numfmt"
)

// Operation names used for metrics labels.
const (
	OperationRound    = "round"
	OperationFraction = "fraction"
)

// NumberService exposes the two-decimal conversions to the API.
// Raw input is parsed with the same permissive rules as the command-line filters,
// so malformed text converts as 0.
type NumberService struct {
	metrics *metrics.Metrics
}

// NewNumberService creates a new NumberService. m may be nil.
func NewNumberService(m *metrics.Metrics) *NumberService {
	return &NumberService{metrics: m}
}

// Round parses raw and rounds it to two decimal places.
func (s *NumberService) Round(raw string) model.RoundResult {
	value := numfmt.Round2(input.ParseFloat(raw))
	s.metrics.ObserveOperation(OperationRound, nil)

	return model.RoundResult{
		Input:     raw,
		Value:     value,
		Formatted: numfmt.FormatFixed(value),
	}
}

// Fraction parses raw and extracts the integer value of the two digits after the
// decimal separator of its two-decimal rendering.
func (s *NumberService) Fraction(raw string) (model.FractionResult, error) {
	fraction, err := numfmt.ExtractFraction(input.ParseFloat(raw))
	s.metrics.ObserveOperation(OperationFraction, err)
	if err != nil {
		return model.FractionResult{}, fmt.Errorf("failed to extract fraction of %q: %w", raw, err)
	}

	return model.FractionResult{
		Input:     raw,
		Rendering: fraction.Rendering,
		Digits:    fraction.Digits,
	}, nil
}
