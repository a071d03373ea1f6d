// archiver packs files into SARCH archives and extracts them again.
//
// Usage:
//
//	archiver pack [-o archive.sarch] file1 [file2 ...]
//	archiver unpack archive.sarch [dir]
//	archiver                       (interactive menu)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/ndewijer/numfmt/internal/archive"
	"github.com/ndewijer/numfmt/internal/config"
	"github.com/ndewijer/numfmt/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("archiver: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	a := archive.NewArchiver(cfg.Archive.Workers)

	if len(args) == 0 {
		return (&menu{archiver: a, cfg: cfg, in: stdin, out: stdout}).loop(ctx)
	}

	switch args[0] {
	case "pack":
		fs := flag.NewFlagSet("pack", flag.ContinueOnError)
		fs.SetOutput(stdout)
		output := fs.String("o", cfg.Archive.DefaultOutput, "output archive path")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: archiver pack [-o archive.sarch] file1 [file2 ...]")
		}

		report, err := a.Pack(ctx, fs.Args(), *output)
		if err != nil {
			return err
		}
		printPackReport(stdout, report)
		return nil

	case "unpack":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: archiver unpack archive.sarch [dir]")
		}
		dir := cfg.Archive.DefaultExtractDir
		if len(args) == 3 {
			dir = args[2]
		}

		report, err := a.Unpack(ctx, args[1], dir)
		if err != nil {
			return err
		}
		printUnpackReport(stdout, report)
		return nil

	default:
		return fmt.Errorf("unknown command %q (want pack or unpack)", args[0])
	}
}

func printPackReport(w io.Writer, report archive.PackReport) {
	for _, p := range report.Skipped {
		fmt.Fprintf(w, "Skipped missing file: %s\n", p)
	}
	fmt.Fprintf(w, "Archive created: %s (%d files)\n", report.Output, len(report.Packed))
}

func printUnpackReport(w io.Writer, report archive.UnpackReport) {
	for _, p := range report.Extracted {
		fmt.Fprintf(w, "Extracted: %s\n", p)
	}
}
