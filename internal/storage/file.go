package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
)

const defaultLockTimeout = 2 * time.Second

// FileStorage keeps all items in one JSON object on disk. Every operation
// takes a lock on a sibling .lock file, so several processes sharing the
// file see whole writes only.
type FileStorage struct {
	path        string
	lock        *flock.Flock
	lockTimeout time.Duration
}

// NewFileStorage creates a file-backed store at path
func NewFileStorage(path string, lockTimeout time.Duration) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &FileStorage{
		path:        path,
		lock:        flock.New(path + ".lock"),
		lockTimeout: lockTimeout,
	}, nil
}

// Path returns the backing file
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) GetItem(key string) (string, error) {
	var value string
	err := s.withLock(func() error {
		items, err := s.read()
		if err != nil {
			return err
		}
		v, ok := items[key]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return value, err
}

func (s *FileStorage) SetItem(key, value string) error {
	return s.withLock(func() error {
		items, err := s.read()
		if err != nil {
			return err
		}
		items[key] = value
		return s.write(items)
	})
}

func (s *FileStorage) RemoveItem(key string) error {
	return s.withLock(func() error {
		items, err := s.read()
		if err != nil {
			return err
		}
		if _, ok := items[key]; !ok {
			return nil
		}
		delete(items, key)
		return s.write(items)
	})
}

func (s *FileStorage) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(func() error {
		items, err := s.read()
		if err != nil {
			return err
		}
		keys = make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil
	})
	return keys, err
}

// Close releases the lock handle
func (s *FileStorage) Close() error {
	return s.lock.Close()
}

// withLock runs fn while holding the exclusive file lock
func (s *FileStorage) withLock(fn func() error) error {
	deadline := time.Now().Add(s.lockTimeout)
	for {
		locked, err := s.lock.TryLock()
		if err != nil {
			return fmt.Errorf("cannot acquire storage lock: %w", err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("storage is locked by another process (lock: %s)", s.lock.Path())
		}
		time.Sleep(20 * time.Millisecond)
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

// read loads the item map; a missing file is an empty store
func (s *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	items := make(map[string]string)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse storage file %s: %w", s.path, err)
	}
	return items, nil
}

// write replaces the file atomically via a temp file and rename
func (s *FileStorage) write(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
