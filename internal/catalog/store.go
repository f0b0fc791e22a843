package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"reelfeed/internal/fileutil"
	"reelfeed/internal/logging"
)

// Store reads and writes record snapshots at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a snapshot store for the given path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "store"),
	}
}

// Path returns the file path the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot from disk. A missing, unreadable, or structurally
// invalid file (no generation timestamp or no record array) is reported as
// absent rather than an error; the caller regenerates from scratch.
func (s *Store) Load() (Snapshot, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cache unreadable, treating as absent",
				logging.String("path", s.path),
				logging.Error(err))
		}
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("cache malformed, treating as absent",
			logging.String("path", s.path),
			logging.Error(err))
		return Snapshot{}, false
	}
	if snap.Generated == 0 || snap.Data == nil {
		s.logger.Warn("cache missing required fields, treating as absent",
			logging.String("path", s.path))
		return Snapshot{}, false
	}
	return snap, true
}

// Save writes the snapshot compactly, atomically replacing any previous file.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.write(data)
}

// SavePretty writes the snapshot indented for human inspection.
func (s *Store) SavePretty(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.write(data)
}

func (s *Store) write(data []byte) error {
	if err := fileutil.WriteAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.logger.Debug("snapshot written",
		logging.String("path", s.path),
		logging.Int("bytes", len(data)))
	return nil
}
