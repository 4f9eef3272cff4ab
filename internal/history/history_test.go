package history

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbox/internal/domain"
	"searchbox/internal/storage"
)

const key = "searchHistory"

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	tr := NewTracker(storage.NewMemoryStorage(), key)

	items, err := tr.Load()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadBareStrings(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.SetItem(key, `["a","b"]`))

	items, err := NewTracker(store, key).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, domain.Titles(items))
}

func TestLoadMalformedFallsBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.SetItem(key, `[{"title": "a"`))

	items, err := NewTracker(store, key).Load()
	require.ErrorIs(t, err, ErrMalformed)
	assert.Empty(t, items)
}

func TestLoadNullIsEmpty(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.SetItem(key, `null`))

	items, err := NewTracker(store, key).Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAppendPersistsUpdatedList(t *testing.T) {
	store := storage.NewMemoryStorage()
	tr := NewTracker(store, key)

	current := []domain.ResultItem{{Title: "first"}}
	updated, err := tr.Append(current, domain.ResultItem{Title: "second"})
	require.NoError(t, err)

	assert.Len(t, current, 1, "input slice must not change")
	require.Len(t, updated, 2)

	raw, err := store.GetItem(key)
	require.NoError(t, err)
	var persisted []domain.ResultItem
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	if diff := cmp.Diff(updated, persisted); diff != "" {
		t.Errorf("persisted history mismatch (-memory +stored):\n%s", diff)
	}
}

func TestAppendKeepsDuplicates(t *testing.T) {
	tr := NewTracker(storage.NewMemoryStorage(), key)
	item := domain.ResultItem{ID: "1", Title: "same"}

	list, err := tr.Append(nil, item)
	require.NoError(t, err)
	list, err = tr.Append(list, item)
	require.NoError(t, err)

	loaded, err := tr.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResultItem{item, item}, loaded)
	assert.Equal(t, list, loaded)
}

type failingStorage struct {
	storage.LocalStorage
}

func (failingStorage) SetItem(string, string) error { return errors.New("disk full") }

func TestAppendWriteFailureStillReturnsList(t *testing.T) {
	tr := NewTracker(failingStorage{storage.NewMemoryStorage()}, key)

	updated, err := tr.Append(nil, domain.ResultItem{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, updated, 1)
}

func TestClear(t *testing.T) {
	store := storage.NewMemoryStorage()
	tr := NewTracker(store, key)
	_, err := tr.Append(nil, domain.ResultItem{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, tr.Clear())
	_, err = store.GetItem(key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
