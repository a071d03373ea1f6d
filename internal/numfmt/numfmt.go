// Package numfmt holds the two-decimal rounding and rendering rules shared by the
// command-line tools and the HTTP API.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ndewijer/numfmt/internal/apperrors"
)

// RoundingPrecision is the multiplier used to round values to two decimal places.
const RoundingPrecision = 100.0

// FractionDigits is the number of digits rendered after the decimal separator.
const FractionDigits = 2

// Separator is the decimal separator produced by FormatFixed.
const Separator = '.'

// Round2 rounds a float64 value to two decimal places.
//
// The rounding uses math.Round, which rounds halfway cases away from zero. The
// multiplication happens in binary floating point, so values that are not exactly
// representable keep their representation error:
//
//	Round2(3.14159) // 3.14
//	Round2(1.996)   // 2
//	Round2(1.005)   // 1 (1.005 * 100 is 100.49999999999999)
func Round2(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// FormatFixed renders value in fixed-point notation with exactly two fractional digits.
// The rendering is correctly rounded from the exact binary value, ties to even, and never
// switches to exponent form. Non-finite values render as inf, -inf and nan.
func FormatFixed(value float64) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}
	return strconv.FormatFloat(value, 'f', FractionDigits, 64)
}

// RoundString rounds value to two places and renders the result.
func RoundString(value float64) string {
	return FormatFixed(Round2(value))
}

// Fraction is the result of extracting the digits after the decimal separator.
type Fraction struct {
	Rendering string
	Digits    int
}

// ExtractFraction renders value with two fractional digits and returns the integer
// value of the digits after the separator. A leading zero is lost: 5.07 yields 7.
func ExtractFraction(value float64) (Fraction, error) {
	rendering := FormatFixed(value)

	dot := strings.IndexByte(rendering, Separator)
	if dot < 0 {
		return Fraction{Rendering: rendering}, fmt.Errorf("%w: %q", apperrors.ErrNoSeparator, rendering)
	}

	digits, err := strconv.Atoi(rendering[dot+1:])
	if err != nil {
		return Fraction{Rendering: rendering}, fmt.Errorf("%w: %v", apperrors.ErrInvalidFraction, err)
	}

	return Fraction{Rendering: rendering, Digits: digits}, nil
}
