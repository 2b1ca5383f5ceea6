// Package report persists generated reports.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/finai/backend/internal/application/adapter"
)

// JSONLinesWriter appends each report as one JSON object per line.
type JSONLinesWriter struct {
	path string
	mu   sync.Mutex
}

// NewJSONLinesWriter creates a writer for the given file path.
func NewJSONLinesWriter(path string) adapter.ReportWriter {
	return &JSONLinesWriter{
		path: path,
	}
}

// Append writes the report on its own line, creating the file and its directory on first use.
func (w *JSONLinesWriter) Append(ctx context.Context, _ time.Time, report adapter.MonthlyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
