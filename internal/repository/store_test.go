package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := repository.Connect(ctx, dsn, 10)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	_, err = store.Pool().Exec(ctx,
		`TRUNCATE users, generated_keys, used_keys, urls RESTART IDENTITY`)
	require.NoError(t, err)
	return store
}

func TestStore_AllocateScenario(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	n, err := store.AddKeys(ctx, []string{"k2_s2", "k1_s1"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	u, err := store.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)
	assert.Equal(t, "k1", u.Key)
	assert.Equal(t, "k1_s1", u.SecretKey)

	found, err := store.FindByOwnerAndTarget(ctx, 1, "http://a")
	require.NoError(t, err)
	assert.Equal(t, u, found)

	u, err = store.Allocate(ctx, 2, "http://b")
	require.NoError(t, err)
	assert.Equal(t, "k2", u.Key)

	_, err = store.Allocate(ctx, 3, "http://c")
	assert.ErrorIs(t, err, domain.ErrPoolExhausted)

	consumed, err := store.ConsumedKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
}

func TestStore_AddKeysRejectsIssuedValues(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = store.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	n, err := store.AddKeys(ctx, []string{"k1_s1", "k1_other", "k2_s2", "k2_s2"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	available, err := store.AvailableKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, available)
}

func TestStore_ConcurrentAllocate(t *testing.T) {
	const callers = 20

	ctx := context.Background()
	store := newTestStore(t)

	keys := make([]string, callers)
	for i := range keys {
		keys[i] = fmt.Sprintf("p%02d_s%02d", i, i)
	}
	_, err := store.AddKeys(ctx, keys)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	for i := range callers {
		wg.Add(1)
		go func(owner int64) {
			defer wg.Done()
			u, err := store.Allocate(ctx, owner, "http://t")
			if err != nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			_, dup := seen[u.Key]
			assert.False(t, dup, "key %s handed out twice", u.Key)
			seen[u.Key] = struct{}{}
		}(int64(i))
	}
	wg.Wait()

	used, err := store.UsedKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, used, len(seen))
}

func TestStore_AllocateDiscardsCollidingKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = store.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	// k1_zz slipped in beside an in-flight allocation of k1.
	_, err = store.Pool().Exec(ctx,
		`INSERT INTO generated_keys (key_value, public_key) VALUES ('k1_zz', 'k1'), ('k2_s2', 'k2')`)
	require.NoError(t, err)

	_, err = store.Allocate(ctx, 2, "http://b")
	require.ErrorIs(t, err, domain.ErrDuplicateKey)

	available, err := store.AvailableKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, available)

	u, err := store.Allocate(ctx, 2, "http://b")
	require.NoError(t, err)
	assert.Equal(t, "k2", u.Key)
}

func TestStore_URLLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = store.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	require.NoError(t, store.IncrementClicks(ctx, "k1"))
	require.NoError(t, store.IncrementClicks(ctx, "k1"))

	u, err := store.SetActive(ctx, "k1_s1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.Clicks)
	assert.False(t, u.IsActive)

	_, err = store.FindByPublicKey(ctx, "k1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.IncrementClicks(ctx, "k1"), domain.ErrNotFound)

	deleted, err := store.DeleteBySecretKey(ctx, "k1_s1")
	require.NoError(t, err)
	assert.Equal(t, "http://a", deleted.TargetURL)

	_, err = store.FindBySecretKey(ctx, "k1_s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.IncrementClicks(ctx, "k1"), domain.ErrNotFound)
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	u := domain.User{Username: "alice", Email: "alice@example.com", APIKey: "tok-a"}
	require.NoError(t, store.CreateUser(ctx, &u))
	assert.NotZero(t, u.ID)

	dupEmail := domain.User{Username: "x", Email: "alice@example.com", APIKey: "tok-b"}
	assert.ErrorIs(t, store.CreateUser(ctx, &dupEmail), domain.ErrEmailTaken)

	dupKey := domain.User{Username: "y", Email: "y@example.com", APIKey: "tok-a"}
	assert.ErrorIs(t, store.CreateUser(ctx, &dupKey), domain.ErrDuplicateKey)

	id, err := store.FindUserIDByAPIKey(ctx, "tok-a")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].APIKey)

	require.NoError(t, store.DeleteUser(ctx, u.ID))
	assert.ErrorIs(t, store.DeleteUser(ctx, u.ID), domain.ErrNotFound)

	_, err = store.FindUserIDByAPIKey(ctx, "tok-a")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}
