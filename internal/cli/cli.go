// Package cli holds the read, compute and print cycle of the single-shot number filters.
package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ndewijer/numfmt/internal/input"
	"github.com/ndewijer/numfmt/internal/numfmt"
)

// RunRounder reads one number from in and writes it rounded to two decimal places.
func RunRounder(in io.Reader, out io.Writer) error {
	n := input.ReadFloat(in)
	rounded := numfmt.RoundString(n)

	log.WithFields(log.Fields{"input": n, "rounded": rounded}).Debug("rounded value")

	if _, err := fmt.Fprintln(out, rounded); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// RunFractionDigits reads one number from in and writes the integer value of the two
// digits after the decimal separator of its two-decimal rendering.
func RunFractionDigits(in io.Reader, out io.Writer) error {
	x := input.ReadFloat(in)

	fraction, err := numfmt.ExtractFraction(x)
	if err != nil {
		return fmt.Errorf("failed to extract fractional digits: %w", err)
	}

	log.WithFields(log.Fields{
		"input":     x,
		"rendering": fraction.Rendering,
		"digits":    fraction.Digits,
	}).Debug("extracted fractional digits")

	if _, err := fmt.Fprintln(out, fraction.Digits); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
