package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/matsen/storelist/internal/store"
	_ "modernc.org/sqlite"
)

// schema is the SQLite layout. Position keeps list order; seq keeps phone order.
const schema = `
CREATE TABLE IF NOT EXISTS stores (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT NOT NULL,
  specialization TEXT NOT NULL,
  working_hours TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS store_phones (
  store_position INTEGER NOT NULL REFERENCES stores(position),
  seq INTEGER NOT NULL,
  phone TEXT NOT NULL,
  PRIMARY KEY (store_position, seq)
);
`

// SQLite stores the list in a SQLite database file.
type SQLite struct {
	path string
}

// NewSQLite creates a SQLite backend for path.
func NewSQLite(path string) *SQLite {
	return &SQLite{path: path}
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

// openDB opens the database and ensures the schema exists.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}

// Load reads all stores ordered by position.
func (s *SQLite) Load() ([]store.Store, error) {
	// The driver creates missing files on open, so check first.
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, &LoadError{Path: s.path, Err: err}
	}

	stores, err := s.load()
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	return stores, nil
}

func (s *SQLite) load() ([]store.Store, error) {
	db, err := openDB(s.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT position, name, address, specialization, working_hours
		FROM stores ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	byPosition := make(map[int64]int)
	for rows.Next() {
		var pos int64
		st := store.Store{Phones: []string{}}
		if err := rows.Scan(&pos, &st.Name, &st.Address, &st.Specialization, &st.WorkingHours); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		byPosition[pos] = len(stores)
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stores: %w", err)
	}

	phoneRows, err := db.Query(`SELECT store_position, phone FROM store_phones
		ORDER BY store_position, seq`)
	if err != nil {
		return nil, fmt.Errorf("querying phones: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var pos int64
		var phone string
		if err := phoneRows.Scan(&pos, &phone); err != nil {
			return nil, fmt.Errorf("scanning phone: %w", err)
		}
		idx, ok := byPosition[pos]
		if !ok {
			return nil, fmt.Errorf("phone %q references missing store position %d", phone, pos)
		}
		stores[idx].AddPhone(phone)
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phones: %w", err)
	}

	return stores, nil
}

// Save replaces the database contents with stores in a single transaction.
func (s *SQLite) Save(stores []store.Store) error {
	if err := s.save(stores); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLite) save(stores []store.Store) error {
	db, err := openDB(s.path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM store_phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM stores"); err != nil {
		return fmt.Errorf("clearing stores: %w", err)
	}

	storeStmt, err := tx.Prepare(`INSERT INTO stores (position, name, address, specialization, working_hours)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing store insert: %w", err)
	}
	defer storeStmt.Close()

	phoneStmt, err := tx.Prepare(`INSERT INTO store_phones (store_position, seq, phone) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing phone insert: %w", err)
	}
	defer phoneStmt.Close()

	for i, st := range stores {
		if _, err := storeStmt.Exec(i, st.Name, st.Address, st.Specialization, st.WorkingHours); err != nil {
			return fmt.Errorf("inserting store %d: %w", i, err)
		}
		for j, phone := range st.Phones {
			if _, err := phoneStmt.Exec(i, j, phone); err != nil {
				return fmt.Errorf("inserting phone %d of store %d: %w", j, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
