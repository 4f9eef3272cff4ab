// Package storage provides a small string-valued key/value store used to keep
// state between runs, in the manner of a browser's localStorage.
package storage

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by GetItem when the key has no value
var ErrNotFound = errors.New("storage: key not found")

// LocalStorage is a synchronous string key/value store
type LocalStorage interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() ([]string, error)
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend     string // file, sqlite or memory
	Path        string
	LockTimeout time.Duration
}

// Open returns the backend named in opts
func Open(opts Options) (LocalStorage, error) {
	switch opts.Backend {
	case "file", "":
		return NewFileStorage(opts.Path, opts.LockTimeout)
	case "sqlite":
		return NewSQLiteStorage(opts.Path)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
