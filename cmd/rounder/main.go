// Command rounder reads a number from stdin and prints it rounded to two decimal places.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ndewijer/numfmt/internal/cli"
	"github.com/ndewijer/numfmt/internal/logging"
)

func main() {
	logging.Setup("")

	if err := cli.RunRounder(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("rounder: %v", err)
	}
}
