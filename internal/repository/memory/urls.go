package memory

import (
	"context"

	"shortlink/internal/domain"
)

func (s *Store) FindByOwnerAndTarget(_ context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.order {
		u := s.urls[key]
		if u.OwnerUserID == ownerID && u.TargetURL == targetURL {
			return copyURL(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) FindByPublicKey(_ context.Context, key string) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.urls[key]
	if !ok || !u.IsActive {
		return nil, domain.ErrNotFound
	}
	return copyURL(u), nil
}

func (s *Store) FindBySecretKey(_ context.Context, secretKey string) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.bySecret[secretKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyURL(u), nil
}

func (s *Store) Allocate(_ context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) == 0 {
		return nil, domain.ErrPoolExhausted
	}

	drawn := s.pool[0]
	s.pool = s.pool[1:]
	u := domain.NewShortURL(drawn, ownerID, targetURL)
	delete(s.poolPublic, u.Key)

	// A colliding key stays out of the pool.
	if err := s.insertLocked(&u); err != nil {
		return nil, err
	}

	s.used = append(s.used, domain.UsedKey{
		ID:          int64(len(s.used) + 1),
		Value:       drawn,
		OwnerUserID: ownerID,
	})
	s.usedValues[u.Key] = struct{}{}
	s.usedValues[u.SecretKey] = struct{}{}

	return copyURL(&u), nil
}

func (s *Store) insertLocked(u *domain.ShortURL) error {
	if _, ok := s.urls[u.Key]; ok {
		return domain.ErrDuplicateKey
	}
	if _, ok := s.bySecret[u.SecretKey]; ok {
		return domain.ErrDuplicateKey
	}
	row := *u
	s.urls[row.Key] = &row
	s.bySecret[row.SecretKey] = &row
	s.order = append(s.order, row.Key)
	return nil
}

func (s *Store) IncrementClicks(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.urls[key]
	if !ok || !u.IsActive {
		return domain.ErrNotFound
	}
	u.Clicks++
	return nil
}

func (s *Store) SetActive(_ context.Context, secretKey string, active bool) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.bySecret[secretKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.IsActive = active
	return copyURL(u), nil
}

func (s *Store) DeleteBySecretKey(_ context.Context, secretKey string) (*domain.ShortURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.bySecret[secretKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(s.bySecret, secretKey)
	delete(s.urls, u.Key)
	for i, key := range s.order {
		if key == u.Key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return u, nil
}

func copyURL(u *domain.ShortURL) *domain.ShortURL {
	c := *u
	return &c
}
