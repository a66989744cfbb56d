package store

import "encoding/json"

// MemoryStore holds snapshots as marshaled blobs. It carries the same
// read-empty-on-missing contract as FileStore and backs tests and dry runs.
type MemoryStore struct {
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Read(name string, v any) error {
	data, ok := s.snapshots[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		zeroTarget(v)
		return nil
	}
	return nil
}

func (s *MemoryStore) Write(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.snapshots[name] = data
	return nil
}

// Has reports whether a snapshot has ever been written under name.
func (s *MemoryStore) Has(name string) bool {
	_, ok := s.snapshots[name]
	return ok
}
