package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/wispmon/internal/model"
)

// BackupWriter appends every ingested record as one JSON line to a flat
// file. It is a best-effort secondary copy of the telemetry feed, not a
// durable store.
type BackupWriter struct {
	mu   sync.Mutex
	path string
}

// NewBackupWriter creates a backup writer for the given file path.
func NewBackupWriter(path string) *BackupWriter {
	return &BackupWriter{path: path}
}

// Append writes one record as a JSON line.
func (w *BackupWriter) Append(record *model.RouterRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal backup record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append backup record: %w", err)
	}

	return nil
}
