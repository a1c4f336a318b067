package custody

import (
	"bondcdp/core"
	"context"
	"testing"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *db.DB {
	database := db.MustOpen(db.SqliteInMemory())
	require.Nil(t, db.Migrate(database))
	return database
}

func TestCustodyCredit(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	ctx := context.Background()
	store := New(database)

	require.Nil(t, store.Credit(ctx, &core.CustodyEntry{SnapshotID: "s1", UserID: "alice", Units: 3}))

	custody, err := store.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(3), custody.Units)

	// a replayed snapshot credits nothing
	require.Nil(t, store.Credit(ctx, &core.CustodyEntry{SnapshotID: "s1", UserID: "alice", Units: 3}))

	custody, err = store.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(3), custody.Units)

	require.Nil(t, store.Credit(ctx, &core.CustodyEntry{SnapshotID: "s2", UserID: "alice", Units: 2}))

	custody, err = store.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(5), custody.Units)
}

func TestCustodyUpdateConflict(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	ctx := context.Background()
	store := New(database)

	require.Nil(t, store.Credit(ctx, &core.CustodyEntry{SnapshotID: "s1", UserID: "alice", Units: 5}))

	fresh, err := store.Find(ctx, "alice")
	require.Nil(t, err)

	stale, err := store.Find(ctx, "alice")
	require.Nil(t, err)

	fresh.Units = 2
	require.Nil(t, store.Update(ctx, database, fresh))

	stale.Units = 0
	assert.Equal(t, core.ErrOptimisticLock, store.Update(ctx, database, stale))

	current, err := store.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(2), current.Units)
}

func TestCustodyDebitToZeroPersists(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	ctx := context.Background()
	store := New(database)

	require.Nil(t, store.Credit(ctx, &core.CustodyEntry{SnapshotID: "s1", UserID: "alice", Units: 3}))

	custody, err := store.Find(ctx, "alice")
	require.Nil(t, err)

	custody.Units = 0
	require.Nil(t, store.Update(ctx, database, custody))

	current, err := store.Find(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), current.Units)
}
