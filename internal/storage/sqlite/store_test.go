package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*HistoryStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenCreatesSchema(t *testing.T) {
	_, path := openTestStore(t)

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	var name string
	err = sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'search_history'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "search_history", name)
}

func TestInsertIsIdempotentPerOwner(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	id, inserted, err := store.Insert(ctx, "alice", "phone _user:alice")
	require.NoError(t, err)
	assert.True(t, inserted)

	again, inserted, err := store.Insert(ctx, "alice", "phone _user:alice")
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, id, again)

	again, inserted, err = store.Insert(ctx, "alice", "  Phone _USER:alice ")
	require.NoError(t, err)
	assert.False(t, inserted, "case and surrounding blanks do not make a new entry")
	assert.Equal(t, id, again)

	_, inserted, err = store.Insert(ctx, "bob", "phone _user:alice")
	require.NoError(t, err)
	assert.True(t, inserted)

	records, err := store.Search(ctx, "alice", "", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSearchPrefixIsLiteralAndNewestFirst(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"Phone", "phone _finished", "photo", "p%one"} {
		_, _, err := store.Insert(ctx, "alice", q)
		require.NoError(t, err)
	}

	records, err := store.Search(ctx, "alice", "phone", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "phone _finished", records[0].Encoded)
	assert.Equal(t, "Phone", records[1].Encoded)

	records, err = store.Search(ctx, "alice", "phone _", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	records, err = store.Search(ctx, "alice", "p%", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p%one", records[0].Encoded)

	records, err = store.Search(ctx, "alice", "", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestDelete(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	id, _, err := store.Insert(ctx, "alice", "one")
	require.NoError(t, err)
	_, _, err = store.Insert(ctx, "alice", "two")
	require.NoError(t, err)
	_, _, err = store.Insert(ctx, "bob", "three")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "bob", id), "other owners cannot delete")
	records, err := store.Search(ctx, "alice", "", 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, store.Delete(ctx, "alice", id))
	records, err = store.Search(ctx, "alice", "", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "two", records[0].Encoded)

	require.NoError(t, store.DeleteAll(ctx, "alice"))
	records, err = store.Search(ctx, "alice", "", 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = store.Search(ctx, "bob", "", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClosedStoreReturnsErrors(t *testing.T) {
	var store *HistoryStore
	_, _, err := store.Insert(context.Background(), "a", "b")
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}
