package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one <name>.json file per collection under a data
// directory. Snapshots are written atomically via a temp file rename so a
// crash mid-write never leaves a half-serialized collection behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Read(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		// Missing snapshot reads as empty.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Malformed snapshots are treated as empty rather than fatal.
		// Unmarshal may have filled part of the target before failing,
		// so reset it.
		zeroTarget(v)
		return nil
	}
	return nil
}

func (s *FileStore) Write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", name, err)
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", name, err)
	}
	return nil
}
