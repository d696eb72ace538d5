// Package storage persists the store list in JSONL or SQLite form.
package storage

import (
	"errors"
	"fmt"

	"github.com/matsen/storelist/internal/store"
)

// Supported backend formats.
const (
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

// ErrNotExist is returned by Load when the data file is absent.
var ErrNotExist = errors.New("data file does not exist")

// Backend loads and saves the full ordered store list.
type Backend interface {
	// Path returns the data file location.
	Path() string

	// Load reads every store in saved order. Returns ErrNotExist if the file
	// is absent and a *LoadError if it cannot be read or decoded.
	Load() ([]store.Store, error)

	// Save overwrites the data file with stores. Returns a *SaveError on failure.
	Save(stores []store.Store) error
}

// LoadError reports a data file that exists but could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a data file that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Open returns the backend for format, storing data at path.
func Open(format, path string) (Backend, error) {
	switch format {
	case FormatJSONL, "":
		return NewJSONL(path), nil
	case FormatSQLite:
		return NewSQLite(path), nil
	default:
		return nil, fmt.Errorf("unknown storage format: %s (valid: %s, %s)", format, FormatJSONL, FormatSQLite)
	}
}
