package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// corruptSuffix is appended to an unparsable store file when it is set aside.
const corruptSuffix = ".corrupt"

// YAMLFile keeps every key in a single YAML mapping on disk.
type YAMLFile struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenYAML loads path, treating a missing file as an empty store. A file that
// does not parse is moved to path+".corrupt" and the store starts empty.
func OpenYAML(path string) (*YAMLFile, error) {
	store := &YAMLFile{path: path, values: make(map[string]string)}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var fileData map[string]string
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		slog.Warn("settings file unreadable, starting from defaults", "path", path, "error", err)
		if renameErr := os.Rename(path, path+corruptSuffix); renameErr != nil {
			slog.Warn("move corrupt settings file", "path", path, "error", renameErr)
		}
		return store, nil
	}
	for key, value := range fileData {
		store.values[key] = value
	}
	return store, nil
}

// Path returns the backing file location.
func (store *YAMLFile) Path() string {
	return store.path
}

// Get returns the value stored under key.
func (store *YAMLFile) Get(key string) (string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	return value, ok
}

// Set stores value and rewrites the file before returning.
func (store *YAMLFile) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	previous, existed := store.values[key]
	store.values[key] = value
	if err := store.flushLocked(); err != nil {
		if existed {
			store.values[key] = previous
		} else {
			delete(store.values, key)
		}
		return err
	}
	return nil
}

// Close is a no-op; every Set is already on disk.
func (store *YAMLFile) Close() error {
	return nil
}

func (store *YAMLFile) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	serialized, err := yaml.Marshal(store.values)
	if err != nil {
		return fmt.Errorf("marshal store yaml: %w", err)
	}

	tmpPath := store.path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
