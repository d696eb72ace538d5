// Package menu runs the interactive store menu and automatic mode.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/matsen/storelist/internal/catalog"
	"github.com/matsen/storelist/internal/storage"
	"github.com/matsen/storelist/internal/store"
)

// State is the command loop state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Session. Logger may be nil.
type Options struct {
	Backend storage.Backend
	In      io.Reader
	Out     io.Writer
	Logger  *zap.Logger
}

// Session owns the catalog for the life of the process and talks to the
// user over line-oriented input and output.
type Session struct {
	catalog *catalog.Catalog
	backend storage.Backend
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
	state   State
}

// NewSession creates a session with an empty catalog. Call Load to populate it.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog: catalog.New(nil),
		backend: opts.Backend,
		in:      bufio.NewReader(opts.In),
		out:     opts.Out,
		logger:  logger,
		state:   StateRunning,
	}
}

// Catalog returns the session's store list.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

// Load replaces the catalog with the persisted stores. A missing file or a
// load failure leaves the catalog empty; neither is fatal.
func (s *Session) Load() {
	path := s.backend.Path()
	stores, err := s.backend.Load()

	switch {
	case err == nil:
		s.catalog = catalog.New(stores)
		s.println(fmt.Sprintf("Data loaded successfully from %s", path))
	case errors.Is(err, storage.ErrNotExist):
		s.catalog = catalog.New(nil)
		s.println(fmt.Sprintf("%s not found. Starting with an empty list.", path))
	default:
		s.catalog = catalog.New(nil)
		s.logger.Error("Error loading data. Starting with an empty list.",
			zap.String("path", path), zap.Error(err))
	}
}

// Save writes the catalog to the backend. A failure is logged and the
// in-memory catalog is left as is.
func (s *Session) Save() {
	path := s.backend.Path()
	if err := s.backend.Save(s.catalog.All()); err != nil {
		s.logger.Error("Error saving data to file", zap.String("path", path), zap.Error(err))
		return
	}
	s.println(fmt.Sprintf("Data successfully saved to file %s", path))
}

// RunAuto appends auto, prints every store, saves and terminates.
func (s *Session) RunAuto(auto store.Store) {
	s.catalog.Add(auto)
	s.printStores(s.catalog.All())
	s.terminate()
}

// terminate persists the catalog and ends the loop.
func (s *Session) terminate() {
	s.Save()
	s.println("Program terminated.")
	s.state = StateTerminated
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printStores(stores []store.Store) {
	for _, st := range stores {
		fmt.Fprintln(s.out, st.String())
	}
}
