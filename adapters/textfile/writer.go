package textfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"countrystats/internal"
	"countrystats/internal/errors"
)

// Writer replaces a text file atomically. Content is written as UTF-8
// exactly as given: no byte-order mark, no added trailing newline.
type Writer struct {
	perm   os.FileMode
	logger *internal.Logger
}

// NewWriter creates a writer producing files with mode 0644
func NewWriter(logger *internal.Logger) *Writer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Writer{perm: 0o644, logger: logger}
}

// Write stores content at path through a temporary file in the same
// directory and a rename, so readers never observe a partial report.
func (w *Writer) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.write(path, content); err != nil {
		w.logger.Error("[Writer] Error writing to output file '%s': %v", path, err)
		return errors.SinkWriteFailed(path, err)
	}
	w.logger.Info("[Writer] Results written to '%s' (%d bytes)", path, len(content))
	return nil
}

func (w *Writer) write(path, content string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err = tmp.Chmod(w.perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
