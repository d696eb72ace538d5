package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matsen/storelist/internal/store"
)

// JSONL stores one JSON-encoded store per line.
type JSONL struct {
	path string
}

// NewJSONL creates a JSONL backend for path.
func NewJSONL(path string) *JSONL {
	return &JSONL{path: path}
}

// Path returns the JSONL file path.
func (j *JSONL) Path() string {
	return j.path
}

// Load reads all stores from the JSONL file.
func (j *JSONL) Load() ([]store.Store, error) {
	stores, err := ReadAll(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, &LoadError{Path: j.path, Err: err}
	}
	return stores, nil
}

// Save writes all stores to the JSONL file, replacing existing content.
func (j *JSONL) Save(stores []store.Store) error {
	if err := WriteAll(j.path, stores); err != nil {
		return &SaveError{Path: j.path, Err: err}
	}
	return nil
}

// ReadAll reads all stores from a JSONL file. Records are decoded as a
// stream, so there is no per-line size limit and blank lines are skipped.
// Open errors are returned unwrapped so callers can test os.IsNotExist.
func ReadAll(path string) ([]store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stores []store.Store
	dec := json.NewDecoder(bufio.NewReader(f))

	for n := 1; ; n++ {
		var s store.Store
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing record %d: %w", n, err)
		}
		if s.Phones == nil {
			s.Phones = []string{}
		}
		stores = append(stores, s)
	}

	return stores, nil
}

// WriteAll writes all stores to a JSONL file, replacing existing content.
func WriteAll(path string, stores []store.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stores file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, s := range stores {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encoding store %d: %w", i, err)
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing store %d: %w", i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing stores file: %w", err)
	}
	return f.Close()
}
