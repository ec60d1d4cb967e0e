package keygen_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/keygen"
)

func TestNew_InvalidLength(t *testing.T) {
	_, err := keygen.New(0)
	assert.ErrorIs(t, err, keygen.ErrInvalidSegmentLength)
}

func TestGenerate_Shape(t *testing.T) {
	g, err := keygen.New(keygen.DefaultSegmentLength)
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^[A-Za-z0-9]{8}_[A-Za-z0-9]{8}$`)
	for range 100 {
		key, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, key)
	}
}

func TestGenerate_CustomLength(t *testing.T) {
	g, err := keygen.New(3)
	require.NoError(t, err)

	key, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, key, 7)

	public, secret := domain.SplitKey(key)
	assert.Len(t, public, 3)
	assert.Equal(t, key, secret)
}

func TestGenerate_Distinct(t *testing.T) {
	g, err := keygen.New(keygen.DefaultSegmentLength)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 10000 {
		key, err := g.Generate()
		require.NoError(t, err)
		public, _ := domain.SplitKey(key)
		_, dup := seen[public]
		require.False(t, dup, "public segment %q generated twice", public)
		seen[public] = struct{}{}
	}
}

func TestAPIKeys_Generate(t *testing.T) {
	a, err := keygen.NewAPIKeys()
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	first, err := a.Generate()
	require.NoError(t, err)
	second, err := a.Generate()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(first), 32)
	assert.Regexp(t, pattern, first)
	assert.NotEqual(t, first, second)
}
