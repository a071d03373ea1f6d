// Command fracdigits reads a number from stdin and prints the integer value of the two
// digits after the decimal point of its two-decimal rendering.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ndewijer/numfmt/internal/cli"
	"github.com/ndewijer/numfmt/internal/logging"
)

func main() {
	logging.Setup("")

	if err := cli.RunFractionDigits(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("fracdigits: %v", err)
	}
}
