package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"shortlink/internal/domain"
	"shortlink/internal/metrics"
)

var ErrAllocationFailed = errors.New("key allocation failed")

type URLService struct {
	urls        URLRepository
	users       UserResolver
	cache       Cache
	recorder    BusinessRecorder
	logger      *slog.Logger
	maxAttempts int
}

func NewURLService(
	urls URLRepository,
	users UserResolver,
	cache Cache,
	recorder BusinessRecorder,
	logger *slog.Logger,
	maxAttempts int,
) *URLService {
	return &URLService{
		urls:        urls,
		users:       users,
		cache:       cache,
		recorder:    recorder,
		logger:      logger,
		maxAttempts: max(1, maxAttempts),
	}
}

// CreateShortURL resolves the caller's API key and allocates a short URL
// for targetURL on their behalf.
func (s *URLService) CreateShortURL(ctx context.Context, apiKey, targetURL string) (*domain.ShortURL, error) {
	ownerID, err := s.users.ResolveUserID(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return s.Allocate(ctx, ownerID, targetURL)
}

// Allocate returns the owner's existing short URL for targetURL, or installs
// the smallest pooled key as a new one. A lost race for the drawn key is
// retried with the next key, up to maxAttempts draws.
func (s *URLService) Allocate(ctx context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error) {
	existing, err := s.urls.FindByOwnerAndTarget(ctx, ownerID, targetURL)
	if err == nil {
		s.recorder.RecordBusiness(metrics.URLReused, 1, nil)
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up existing url: %w", err)
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		u, err := s.urls.Allocate(ctx, ownerID, targetURL)
		switch {
		case err == nil:
			s.recorder.RecordBusiness(metrics.URLAllocated, 1, nil)
			return u, nil
		case errors.Is(err, domain.ErrPoolExhausted):
			s.recorder.RecordBusiness(metrics.PoolExhausted, 1, nil)
			s.logger.Warn("key pool exhausted", slog.Int64("owner_id", ownerID))
			return nil, err
		case errors.Is(err, domain.ErrDuplicateKey):
			s.recorder.RecordBusiness(metrics.AllocationRetry, 1, map[string]string{
				"attempt": strconv.Itoa(attempt),
			})
			s.logger.Debug("lost race for pooled key, retrying", slog.Int("attempt", attempt))
		default:
			return nil, fmt.Errorf("failed to allocate key: %w", err)
		}
	}

	return nil, fmt.Errorf("%w: gave up after %d attempts", ErrAllocationFailed, s.maxAttempts)
}

// Redeem resolves an active public key to its target URL and counts the
// click. The increment only matches active rows, so a key deactivated or
// deleted after the lookup (or served from a stale cache entry) is evicted
// and reported as domain.ErrNotFound. Any other increment failure does not
// fail the redirect.
func (s *URLService) Redeem(ctx context.Context, key string) (string, error) {
	target, ok := s.cache.Get(ctx, key)
	if ok {
		s.recorder.RecordBusiness(metrics.CacheHit, 1, nil)
	} else {
		s.recorder.RecordBusiness(metrics.CacheMiss, 1, nil)

		u, err := s.urls.FindByPublicKey(ctx, key)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", err
			}
			return "", fmt.Errorf("failed to find url: %w", err)
		}
		target = u.TargetURL
		s.cache.Set(ctx, key, target)
	}

	if err := s.urls.IncrementClicks(ctx, key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.cache.Delete(ctx, key)
			return "", err
		}
		s.logger.Warn("failed to increment clicks",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	s.recorder.RecordBusiness(metrics.Redirects, 1, map[string]string{"key": key})
	return target, nil
}

func (s *URLService) GetBySecret(ctx context.Context, secretKey string) (*domain.ShortURL, error) {
	u, err := s.urls.FindBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, wrapLookup(err)
	}
	return u, nil
}

func (s *URLService) SetActive(ctx context.Context, secretKey string, active bool) (*domain.ShortURL, error) {
	u, err := s.urls.SetActive(ctx, secretKey, active)
	if err != nil {
		return nil, wrapLookup(err)
	}
	s.cache.Delete(ctx, u.Key)
	return u, nil
}

func (s *URLService) DeleteBySecret(ctx context.Context, secretKey string) (*domain.ShortURL, error) {
	u, err := s.urls.DeleteBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, wrapLookup(err)
	}
	s.cache.Delete(ctx, u.Key)
	return u, nil
}

func wrapLookup(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("failed to access url: %w", err)
}
