package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/domain"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantPublic string
	}{
		{"two segments", "k1_s1", "k1"},
		{"generated shape", "aB3dE6gH_Zz9yX8wV", "aB3dE6gH"},
		{"no separator", "plain", "plain"},
		{"extra separators", "a_b_c", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			public, secret := domain.SplitKey(tt.value)
			assert.Equal(t, tt.wantPublic, public)
			assert.Equal(t, tt.value, secret)
		})
	}
}

func TestNewShortURL(t *testing.T) {
	u := domain.NewShortURL("k1_s1", 7, "http://a")

	assert.Equal(t, domain.ShortURL{
		Key:         "k1",
		SecretKey:   "k1_s1",
		TargetURL:   "http://a",
		IsActive:    true,
		Clicks:      0,
		OwnerUserID: 7,
	}, u)
}

func TestNewURLInfo(t *testing.T) {
	u := domain.ShortURL{Key: "k1", SecretKey: "k1_s1", TargetURL: "http://a", IsActive: true, Clicks: 3}

	info := domain.NewURLInfo(&u, "http://short.url")

	assert.Equal(t, "http://short.url/k1", info.URL)
	assert.Equal(t, "http://short.url/admin/k1_s1", info.AdminURL)
	assert.Equal(t, int64(3), info.Clicks)
	assert.True(t, info.IsActive)
	assert.Equal(t, "http://a", info.TargetURL)
}
