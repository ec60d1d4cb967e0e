package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/service"
	"shortlink/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleURL() *domain.ShortURL {
	return &domain.ShortURL{
		Key:         "abc",
		SecretKey:   "abc_xyz",
		TargetURL:   "https://example.com",
		IsActive:    true,
		OwnerUserID: 7,
	}
}

// CreateShortURL tests

func TestCreateShortURL_InvalidAPIKey(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	users := mocks.NewMockUserResolver(t)
	users.EXPECT().ResolveUserID(mock.Anything, "bad").Return(int64(0), domain.ErrInvalidCredential)

	cache := mocks.NewMockCache(t)
	recorder := mocks.NewMockBusinessRecorder(t)

	svc := service.NewURLService(repo, users, cache, recorder, discardLogger(), 5)

	_, err := svc.CreateShortURL(context.Background(), "bad", "https://example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestCreateShortURL_ReturnsExisting(t *testing.T) {
	existing := sampleURL()

	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByOwnerAndTarget(mock.Anything, int64(7), "https://example.com").Return(existing, nil)

	users := mocks.NewMockUserResolver(t)
	users.EXPECT().ResolveUserID(mock.Anything, "key").Return(int64(7), nil)

	cache := mocks.NewMockCache(t)
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("url_reused", float64(1), mock.Anything).Return()

	svc := service.NewURLService(repo, users, cache, recorder, discardLogger(), 5)

	u, err := svc.CreateShortURL(context.Background(), "key", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, existing, u)
}

func TestAllocate_LookupError(t *testing.T) {
	expectedErr := errors.New("db connection error")

	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByOwnerAndTarget(mock.Anything, int64(1), "https://example.com").Return(nil, expectedErr)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), mocks.NewMockCache(t),
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	_, err := svc.Allocate(context.Background(), 1, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

func TestAllocate_StorageError(t *testing.T) {
	expectedErr := errors.New("tx aborted")

	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByOwnerAndTarget(mock.Anything, int64(1), "https://example.com").Return(nil, domain.ErrNotFound)
	repo.EXPECT().Allocate(mock.Anything, int64(1), "https://example.com").Return(nil, expectedErr).Once()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), mocks.NewMockCache(t),
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	_, err := svc.Allocate(context.Background(), 1, "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

func TestAllocate_GivesUpAfterMaxAttempts(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByOwnerAndTarget(mock.Anything, int64(1), "https://example.com").Return(nil, domain.ErrNotFound)
	repo.EXPECT().Allocate(mock.Anything, int64(1), "https://example.com").Return(nil, domain.ErrDuplicateKey).Times(3)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("allocation_retry", float64(1), mock.Anything).Return().Times(3)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), mocks.NewMockCache(t),
		recorder, discardLogger(), 3)

	_, err := svc.Allocate(context.Background(), 1, "https://example.com")
	assert.ErrorIs(t, err, service.ErrAllocationFailed)
}

// Redeem tests

func TestRedeem_CacheHit(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().IncrementClicks(mock.Anything, "abc").Return(nil)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "abc").Return("https://cached.example.com", true)

	var recordedMetrics []string
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).
		Run(func(name string, value float64, labels map[string]string) {
			recordedMetrics = append(recordedMetrics, name)
		}).Return().Times(2)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	target, err := svc.Redeem(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://cached.example.com", target)
	assert.Equal(t, []string{"cache_hit", "redirects"}, recordedMetrics)
}

func TestRedeem_CacheMiss_DBFound(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByPublicKey(mock.Anything, "abc").Return(sampleURL(), nil)
	repo.EXPECT().IncrementClicks(mock.Anything, "abc").Return(nil)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "abc").Return("", false)
	cache.EXPECT().Set(mock.Anything, "abc", "https://example.com").Return()

	var recordedMetrics []string
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).
		Run(func(name string, value float64, labels map[string]string) {
			recordedMetrics = append(recordedMetrics, name)
		}).Return().Times(2)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	target, err := svc.Redeem(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
	assert.Equal(t, []string{"cache_miss", "redirects"}, recordedMetrics)
}

func TestRedeem_NotFound(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByPublicKey(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "missing").Return("", false)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("cache_miss", float64(1), mock.Anything).Return()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	_, err := svc.Redeem(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedeem_DBError(t *testing.T) {
	expectedErr := errors.New("db error")

	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByPublicKey(mock.Anything, "abc").Return(nil, expectedErr)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "abc").Return("", false)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("cache_miss", float64(1), mock.Anything).Return()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	_, err := svc.Redeem(context.Background(), "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestRedeem_StaleCacheEntry(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().IncrementClicks(mock.Anything, "abc").Return(domain.ErrNotFound)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "abc").Return("https://cached.example.com", true)
	cache.EXPECT().Delete(mock.Anything, "abc").Return().Once()

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness("cache_hit", float64(1), mock.Anything).Return().Once()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	target, err := svc.Redeem(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, target)
}

func TestRedeem_IncrementFailureStillRedirects(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindByPublicKey(mock.Anything, "abc").Return(sampleURL(), nil)
	repo.EXPECT().IncrementClicks(mock.Anything, "abc").Return(errors.New("lock timeout"))

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "abc").Return("", false)
	cache.EXPECT().Set(mock.Anything, "abc", "https://example.com").Return()

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache, recorder, discardLogger(), 5)

	target, err := svc.Redeem(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}

// Admin tests

func TestGetBySecret_NotFound(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().FindBySecretKey(mock.Anything, "abc_xyz").Return(nil, domain.ErrNotFound)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), mocks.NewMockCache(t),
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	_, err := svc.GetBySecret(context.Background(), "abc_xyz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetActive_InvalidatesCache(t *testing.T) {
	deactivated := sampleURL()
	deactivated.IsActive = false

	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().SetActive(mock.Anything, "abc_xyz", false).Return(deactivated, nil)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, "abc").Return().Once()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache,
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	u, err := svc.SetActive(context.Background(), "abc_xyz", false)
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestDeleteBySecret_InvalidatesCache(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().DeleteBySecretKey(mock.Anything, "abc_xyz").Return(sampleURL(), nil)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete(mock.Anything, "abc").Return().Once()

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), cache,
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	u, err := svc.DeleteBySecret(context.Background(), "abc_xyz")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", u.TargetURL)
}

func TestDeleteBySecret_NotFoundLeavesCache(t *testing.T) {
	repo := mocks.NewMockURLRepository(t)
	repo.EXPECT().DeleteBySecretKey(mock.Anything, "abc_xyz").Return(nil, domain.ErrNotFound)

	svc := service.NewURLService(repo, mocks.NewMockUserResolver(t), mocks.NewMockCache(t),
		mocks.NewMockBusinessRecorder(t), discardLogger(), 5)

	_, err := svc.DeleteBySecret(context.Background(), "abc_xyz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
