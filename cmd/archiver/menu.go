package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ndewijer/numfmt/internal/archive"
	"github.com/ndewijer/numfmt/internal/config"
)

// menu is the interactive front end used when archiver runs without arguments.
type menu struct {
	archiver *archive.Archiver
	cfg      *config.Config
	in       io.Reader
	out      io.Writer
}

func (m *menu) loop(ctx context.Context) error {
	sc := bufio.NewScanner(m.in)

	prompt := func(label string) (string, bool) {
		fmt.Fprint(m.out, label)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Simple archiver ===")
		fmt.Fprintln(m.out, "1. Create archive")
		fmt.Fprintln(m.out, "2. Extract archive")
		fmt.Fprintln(m.out, "3. Quit")

		choice, ok := prompt("Choose an action: ")
		if !ok {
			return sc.Err()
		}

		switch choice {
		case "1":
			files, ok := prompt("File paths (space separated): ")
			if !ok {
				return sc.Err()
			}
			output, ok := prompt("Archive path: ")
			if !ok {
				return sc.Err()
			}
			if output == "" {
				output = m.cfg.Archive.DefaultOutput
			}

			report, err := m.archiver.Pack(ctx, strings.Fields(files), output)
			if err != nil {
				fmt.Fprintf(m.out, "Packing failed: %v\n", err)
				continue
			}
			printPackReport(m.out, report)
			fmt.Fprintln(m.out, "Packing finished.")

		case "2":
			archivePath, ok := prompt("Archive path: ")
			if !ok {
				return sc.Err()
			}
			dir, ok := prompt("Output directory: ")
			if !ok {
				return sc.Err()
			}
			if dir == "" {
				dir = m.cfg.Archive.DefaultExtractDir
			}

			report, err := m.archiver.Unpack(ctx, archivePath, dir)
			if err != nil {
				fmt.Fprintf(m.out, "Extraction failed: %v\n", err)
				continue
			}
			printUnpackReport(m.out, report)
			fmt.Fprintln(m.out, "Extraction finished.")

		case "3":
			fmt.Fprintln(m.out, "Bye.")
			return nil

		default:
			fmt.Fprintln(m.out, "Invalid choice!")
		}
	}
}
