package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/repository/memory"
)

func TestAddKeys_SkipsIssuedValues(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	n, err := s.AddKeys(ctx, []string{"k2_s2", "k1_s1", "k1_s1"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// same public segment as a pooled key
	n, err = s.AddKeys(ctx, []string{"k1_other"})
	require.NoError(t, err)
	assert.Zero(t, n)

	keys, err := s.GeneratedKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.GeneratedKey{{Value: "k1_s1"}, {Value: "k2_s2"}}, keys)
}

func TestAddKeys_SkipsConsumedValues(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	u, err := s.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	_, err = s.DeleteBySecretKey(ctx, u.SecretKey)
	require.NoError(t, err)

	n, err := s.AddKeys(ctx, []string{"k1_s1", "k1_new"})
	require.NoError(t, err)
	assert.Zero(t, n, "consumed keys must never return to the pool")
}

func TestAllocate_DrawsSmallestKey(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.AddKeys(ctx, []string{"zz_1", "aa_1", "mm_1"})
	require.NoError(t, err)

	u, err := s.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	assert.Equal(t, "aa", u.Key)
	assert.Equal(t, "aa_1", u.SecretKey)
	assert.True(t, u.IsActive)
	assert.Zero(t, u.Clicks)

	available, err := s.AvailableKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	used, err := s.UsedKeys(ctx)
	require.NoError(t, err)
	require.Len(t, used, 1)
	assert.Equal(t, "aa_1", used[0].Value)
	assert.Equal(t, int64(1), used[0].OwnerUserID)
}

func TestAllocate_EmptyPool(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.Allocate(ctx, 1, "http://a")
	assert.ErrorIs(t, err, domain.ErrPoolExhausted)

	consumed, err := s.ConsumedKeys(ctx)
	require.NoError(t, err)
	assert.Zero(t, consumed)
}

func TestFindByPublicKey_FiltersInactive(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = s.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	_, err = s.SetActive(ctx, "k1_s1", false)
	require.NoError(t, err)

	_, err = s.FindByPublicKey(ctx, "k1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	u, err := s.FindBySecretKey(ctx, "k1_s1")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestIncrementClicks(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = s.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	require.NoError(t, s.IncrementClicks(ctx, "k1"))
	require.NoError(t, s.IncrementClicks(ctx, "k1"))

	u, err := s.FindBySecretKey(ctx, "k1_s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.Clicks)

	assert.ErrorIs(t, s.IncrementClicks(ctx, "missing"), domain.ErrNotFound)

	_, err = s.SetActive(ctx, "k1_s1", false)
	require.NoError(t, err)
	assert.ErrorIs(t, s.IncrementClicks(ctx, "k1"), domain.ErrNotFound)

	u, err = s.FindBySecretKey(ctx, "k1_s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.Clicks)
}

func TestDeleteBySecretKey(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	_, err := s.AddKeys(ctx, []string{"k1_s1"})
	require.NoError(t, err)
	_, err = s.Allocate(ctx, 1, "http://a")
	require.NoError(t, err)

	u, err := s.DeleteBySecretKey(ctx, "k1_s1")
	require.NoError(t, err)
	assert.Equal(t, "k1", u.Key)

	_, err = s.FindBySecretKey(ctx, "k1_s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.FindByOwnerAndTarget(ctx, 1, "http://a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.DeleteBySecretKey(ctx, "k1_s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	alice := domain.User{Username: "alice", Email: "alice@example.com", APIKey: "key-a"}
	require.NoError(t, s.CreateUser(ctx, &alice))
	assert.Equal(t, int64(1), alice.ID)

	dup := domain.User{Username: "alice2", Email: "alice@example.com", APIKey: "key-b"}
	assert.ErrorIs(t, s.CreateUser(ctx, &dup), domain.ErrEmailTaken)

	id, err := s.FindUserIDByAPIKey(ctx, "key-a")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)

	_, err = s.FindUserIDByAPIKey(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].APIKey)

	require.NoError(t, s.DeleteUser(ctx, alice.ID))
	assert.ErrorIs(t, s.DeleteUser(ctx, alice.ID), domain.ErrNotFound)

	_, err = s.FindUserIDByAPIKey(ctx, "key-a")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}
