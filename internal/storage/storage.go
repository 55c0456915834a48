package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// ErrUnknownBackend indicates an unsupported store backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Backend names accepted by Open.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	yamlFileName   = "settings.yaml"
	sqliteFileName = "settings.db"
)

// KV is a synchronous string-keyed store that survives restarts.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// Open creates the store for backend inside dir.
func Open(backend, dir string) (KV, error) {
	switch backend {
	case BackendYAML, "":
		return OpenYAML(filepath.Join(dir, yamlFileName))
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, sqliteFileName))
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("open store %q: %w", backend, ErrUnknownBackend)
}

// Memory is a process-local KV used in tests and for throwaway sessions.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (memory *Memory) Get(key string) (string, bool) {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	value, ok := memory.values[key]
	return value, ok
}

// Set stores value under key.
func (memory *Memory) Set(key, value string) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	memory.values[key] = value
	return nil
}

// Keys returns the stored keys in sorted order.
func (memory *Memory) Keys() []string {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	keys := make([]string, 0, len(memory.values))
	for key := range memory.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (memory *Memory) Close() error {
	return nil
}
