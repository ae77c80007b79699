package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mtmuztaba/portfolio/internal/db"
	"github.com/mtmuztaba/portfolio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, view.All, s.View)
	assert.Equal(t, "hero", s.Nav.Active)
	assert.False(t, s.Nav.Visible)
	assert.False(t, s.Lightbox.Open)
	assert.NotNil(t, s.Expanded)
}

func TestSetView(t *testing.T) {
	s := New()
	s.Nav.Active = "projects"

	s.SetView(view.CAD)
	assert.Equal(t, view.CAD, s.View)
	assert.Equal(t, "hero", s.Nav.Active)

	s.Nav.Active = "skills"
	s.SetView(view.Design)
	s.SetView(view.Design)
	assert.Equal(t, "skills", s.Nav.Active)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID("../../etc/passwd"))
	assert.False(t, ValidID(""))
}

func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	id := NewID()

	fresh, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, New(), fresh)

	st := New()
	st.SetView(view.CAD)
	st.Expanded.Toggle("solidworks:Table Fan Redesign")
	st.Lightbox.OpenAt([]string{"/a.jpg", "/b.jpg"}, 1)
	st.Nav.Visible = true
	require.NoError(t, store.Save(ctx, id, st))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, view.CAD, got.View)
	assert.True(t, got.Expanded.Expanded("solidworks:Table Fan Redesign"))
	assert.True(t, got.Lightbox.Open)
	assert.Equal(t, "/b.jpg", got.Lightbox.Current())
	assert.True(t, got.Nav.Visible)
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestSQLStore(t *testing.T) {
	d, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer d.Close()

	roundTrip(t, NewSQLStore(d))
}

func TestSQLStore_RepairsBadView(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.SaveSession(ctx, "x", []byte(`{"view":"gallery","nav":{"active":"projects"}}`)))

	st, err := m.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, view.All, st.View)
	assert.Equal(t, "projects", st.Nav.Active)
	assert.NotNil(t, st.Expanded)
}

func TestSQLStore_CorruptState(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, m.SaveSession(ctx, "x", []byte(`{not json`)))

	_, err := m.Load(ctx, "x")
	assert.Error(t, err)
}

func TestUpdate_SerializesPerSession(t *testing.T) {
	d, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer d.Close()

	stores := map[string]Store{"sqlite": NewSQLStore(d), "memory": NewMemoryStore()}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := NewID()

			var wg sync.WaitGroup
			for i := 0; i < 100; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_, err := store.Update(ctx, id, func(st *State) error {
						st.Expanded.Toggle("company:CLP Power Hong Kong")
						return nil
					})
					assert.NoError(t, err)
				}()
				go func() {
					defer wg.Done()
					_, err := store.Update(ctx, id, func(st *State) error {
						st.Nav.Visible = !st.Nav.Visible
						return nil
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			st, err := store.Load(ctx, id)
			require.NoError(t, err)
			assert.False(t, st.Expanded.Expanded("company:CLP Power Hong Kong"), "an even number of toggles restores the flag")
			assert.False(t, st.Nav.Visible)
		})
	}
}

func TestUpdate_ErrorSkipsSave(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	id := NewID()

	boom := errors.New("boom")
	_, err := store.Update(ctx, id, func(st *State) error {
		st.SetView(view.CAD)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	st, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, view.All, st.View)
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	var k keyedMutex
	unlock := k.lock("a")
	unlock()
	unlock = k.lock("b")
	assert.Len(t, k.locks, 1)
	unlock()
	assert.Empty(t, k.locks)
}
