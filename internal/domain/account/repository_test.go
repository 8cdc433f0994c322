package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronotes/internal/storage/kv"
)

// Existing installations carry a "users" key holding a JSON array of
// {username, password} objects; the layout must not drift.
func TestRepository_PersistedLayout(t *testing.T) {
	store := kv.NewMemory()
	repo := NewRepo(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, Account{Username: "alice", Password: "pw1"}))
	require.NoError(t, repo.Append(ctx, Account{Username: "bob", Password: "pw2"}))

	raw, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"username":"alice","password":"pw1"},
		{"username":"bob","password":"pw2"}
	]`, string(raw))
}

func TestRepository_EmptyStore(t *testing.T) {
	repo := NewRepo(kv.NewMemory())

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestRepository_CorruptData(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set(context.Background(), "users", []byte("not json")))

	repo := NewRepo(store)
	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestRepository_PreservesInsertionOrder(t *testing.T) {
	repo := NewRepo(kv.NewMemory())
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Append(ctx, Account{Username: name, Password: "pw"}))
	}

	accounts, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, acc := range accounts {
		names = append(names, acc.Username)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}
