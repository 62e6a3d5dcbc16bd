package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type fileKeyValue struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewFileKeyValue opens the JSON key-value file at path, creating it lazily
// on the first write. The reserved path ":memory:" (or an empty path) keeps
// all values in process memory only, which is what tests use.
//
// Every Set and Delete persists the whole file before returning, matching the
// synchronous write semantics the repositories rely on: once a mutation
// returns, the value is durable.
func NewFileKeyValue(path string) (KeyValue, error) {
	if path == "" {
		path = ":memory:"
	}

	inMemory := path == ":memory:" || path == "memory"
	s := &fileKeyValue{
		path:     path,
		inMemory: inMemory,
		values:   make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValue) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), raw...), true, nil
}

func (s *fileKeyValue) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return s.persist()
}

func (s *fileKeyValue) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persist()
}

func (s *fileKeyValue) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var values map[string]json.RawMessage
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if values == nil {
		values = make(map[string]json.RawMessage)
	}

	s.values = values
	return nil
}

func (s *fileKeyValue) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}
