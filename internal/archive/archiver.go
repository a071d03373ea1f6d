// Package archive implements the SARCH container: a multi-file archive where every file is
// run-length encoded and then Huffman coded.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/numfmt/internal/apperrors"
)

// DefaultWorkers bounds concurrent file encoding when no worker count is configured.
const DefaultWorkers = 4

// Archiver packs and unpacks SARCH archives.
type Archiver struct {
	workers int
}

// NewArchiver creates an Archiver that encodes at most workers files at once.
func NewArchiver(workers int) *Archiver {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Archiver{workers: workers}
}

// PackReport describes the outcome of Pack.
type PackReport struct {
	Output  string
	Packed  []string
	Skipped []string
}

// Pack compresses the files at paths into a new archive at output.
// Paths that do not exist are skipped and listed in the report. Entries keep the order of
// paths and are stored under their base names.
func (a *Archiver) Pack(ctx context.Context, paths []string, output string) (PackReport, error) {
	report := PackReport{Output: output}
	if len(paths) == 0 {
		return report, apperrors.ErrNoInputFiles
	}

	entries := make([]*Entry, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("path", path).Warn("file does not exist, skipping")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			log.WithFields(log.Fields{"path": path, "bytes": len(data)}).Info("processing file")
			e := EncodeEntry(filepath.Base(path), data)
			entries[i] = &e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	written := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			report.Skipped = append(report.Skipped, paths[i])
			continue
		}
		written = append(written, *e)
		report.Packed = append(report.Packed, paths[i])
	}

	if err := writeArchiveFile(output, written); err != nil {
		return report, err
	}

	log.WithFields(log.Fields{
		"output":  output,
		"packed":  len(report.Packed),
		"skipped": len(report.Skipped),
	}).Info("archive created")

	return report, nil
}

// writeArchiveFile writes entries to a temporary file next to output and renames it into
// place, so a failed write never leaves a partial archive at output.
func writeArchiveFile(output string, entries []Entry) (err error) {
	f, err := os.CreateTemp(filepath.Dir(output), ".sarch-*")
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = WriteArchive(f, entries); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set archive permissions: %w", err)
	}
	if err = os.Rename(f.Name(), output); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return nil
}

// UnpackReport describes the outcome of Unpack.
type UnpackReport struct {
	Extracted []string
}

// Unpack extracts every entry of the archive at archivePath into dir, creating dir if needed.
func (a *Archiver) Unpack(ctx context.Context, archivePath, dir string) (UnpackReport, error) {
	var report UnpackReport

	f, err := os.Open(archivePath)
	if err != nil {
		return report, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f)
	if err != nil {
		return report, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, fmt.Errorf("failed to create output directory: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, err
		}

		target, err := entryPath(dir, e.Name)
		if err != nil {
			return report, err
		}

		data, err := e.Decode()
		if err != nil {
			return report, err
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return report, fmt.Errorf("failed to write %s: %w", target, err)
		}

		log.WithField("path", target).Info("extracted file")
		report.Extracted = append(report.Extracted, target)
	}

	return report, nil
}

// entryPath joins dir and name, refusing names that are not a single path element.
func entryPath(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsafeEntryName, name)
	}
	return filepath.Join(dir, name), nil
}
