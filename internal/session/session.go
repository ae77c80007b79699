// Package session keeps each visitor's UI state between fragment requests.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mtmuztaba/portfolio/internal/accordion"
	"github.com/mtmuztaba/portfolio/internal/lightbox"
	"github.com/mtmuztaba/portfolio/internal/nav"
	"github.com/mtmuztaba/portfolio/internal/view"
)

// State is everything the page remembers for one visitor.
type State struct {
	View     view.View         `json:"view"`
	Expanded accordion.State   `json:"expanded"`
	Lightbox lightbox.Lightbox `json:"lightbox"`
	Nav      nav.State         `json:"nav"`
}

// New returns the state of a first visit.
func New() *State {
	return &State{
		View:     view.Default,
		Expanded: accordion.State{},
		Nav:      nav.New(view.NavItems(view.Default)),
	}
}

// SetView switches the view and re-anchors the nav to the new item set.
func (s *State) SetView(v view.View) {
	s.View = v
	s.Nav.Reset(view.NavItems(v))
}

// normalize repairs state decoded from storage.
func (s *State) normalize() {
	if !s.View.Valid() {
		s.View = view.Default
	}
	if s.Expanded == nil {
		s.Expanded = accordion.State{}
	}
	s.Nav.Reset(view.NavItems(s.View))
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one NewID produced.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Store persists states by session id. Load returns a fresh state for an
// unknown id.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, s *State) error
	// Update loads the state for id, applies fn and saves the result. Calls
	// for the same id are serialized. Nothing is saved when fn fails.
	Update(ctx context.Context, id string, fn func(*State) error) (*State, error)
}

// BlobStore is the storage the SQLite store needs.
type BlobStore interface {
	LoadSession(ctx context.Context, id string) ([]byte, error)
	SaveSession(ctx context.Context, id string, state []byte) error
}

// SQLStore keeps states as JSON in the site database.
type SQLStore struct {
	db    BlobStore
	locks keyedMutex
}

// NewSQLStore wraps db.
func NewSQLStore(db BlobStore) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, id string) (*State, error) {
	unlock := s.locks.lock(id)
	defer unlock()
	return s.load(ctx, id)
}

func (s *SQLStore) Save(ctx context.Context, id string, st *State) error {
	unlock := s.locks.lock(id)
	defer unlock()
	return s.save(ctx, id, st)
}

func (s *SQLStore) Update(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.save(ctx, id, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *SQLStore) load(ctx context.Context, id string) (*State, error) {
	data, err := s.db.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return New(), nil
	}

	st := &State{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	st.normalize()
	return st, nil
}

func (s *SQLStore) save(ctx context.Context, id string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.db.SaveSession(ctx, id, data)
}

// keyedMutex hands out one mutex per session id. Entries are dropped once
// nobody holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &keyedLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

// MemoryStore keeps states in process memory.
type MemoryStore struct {
	*SQLStore
	blobs *memoryBlobs
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	blobs := &memoryBlobs{states: make(map[string][]byte)}
	return &MemoryStore{SQLStore: NewSQLStore(blobs), blobs: blobs}
}

func (m *MemoryStore) LoadSession(ctx context.Context, id string) ([]byte, error) {
	return m.blobs.LoadSession(ctx, id)
}

func (m *MemoryStore) SaveSession(ctx context.Context, id string, state []byte) error {
	return m.blobs.SaveSession(ctx, id, state)
}

type memoryBlobs struct {
	mu     sync.Mutex
	states map[string][]byte
}

func (m *memoryBlobs) LoadSession(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[id], nil
}

func (m *memoryBlobs) SaveSession(_ context.Context, id string, state []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = state
	return nil
}
