// Package store persists the aggregate snapshot as a single JSON document.
// Writes are whole-file replaces: the new snapshot lands in a temp file that
// is renamed over the previous one, so readers never see a partial document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kittycapital/crypto-treasury/internal/treasury"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// Store reads and writes the snapshot artifact
// SSOT: the output file is touched only through this store.
type Store struct {
	path   string
	logger *logger.Logger
}

// New creates a Store for the given output path.
func New(path string, log *logger.Logger) *Store {
	return &Store{
		path:   path,
		logger: log.WithField("module", "store"),
	}
}

// Path returns the snapshot location.
func (s *Store) Path() string {
	return s.path
}

// Write atomically replaces the snapshot with the given report.
func (s *Store) Write(report *treasury.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Temp file in the same dir so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"path":  s.path,
		"bytes": len(data),
	}).Info("Snapshot written")

	return nil
}

// Read loads the latest snapshot. os.IsNotExist on the returned error means
// no run has completed yet.
func (s *Store) Read() (*treasury.Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var report treasury.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &report, nil
}

// ReadRaw returns the snapshot bytes as written, for serving directly.
func (s *Store) ReadRaw() ([]byte, error) {
	return os.ReadFile(s.path)
}
