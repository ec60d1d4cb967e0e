// Package memory is an in-process implementation of the storage interfaces.
// A single mutex guards every table, which makes each method one atomic unit.
package memory

import (
	"context"
	"slices"
	"sync"

	"shortlink/internal/domain"
)

type Store struct {
	mu sync.Mutex

	// pool holds unconsumed keys sorted ascending.
	pool       []string
	poolPublic map[string]struct{}

	used       []domain.UsedKey
	usedValues map[string]struct{}

	urls     map[string]*domain.ShortURL
	bySecret map[string]*domain.ShortURL
	order    []string

	users      map[int64]domain.User
	byAPIKey   map[string]int64
	byEmail    map[string]int64
	nextUserID int64
}

func New() *Store {
	return &Store{
		poolPublic: make(map[string]struct{}),
		usedValues: make(map[string]struct{}),
		urls:       make(map[string]*domain.ShortURL),
		bySecret:   make(map[string]*domain.ShortURL),
		users:      make(map[int64]domain.User),
		byAPIKey:   make(map[string]int64),
		byEmail:    make(map[string]int64),
	}
}

func (s *Store) AddKeys(_ context.Context, values []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, v := range values {
		public, secret := domain.SplitKey(v)
		if s.issuedLocked(public, secret) {
			continue
		}
		idx, _ := slices.BinarySearch(s.pool, secret)
		s.pool = slices.Insert(s.pool, idx, secret)
		s.poolPublic[public] = struct{}{}
		inserted++
	}
	return inserted, nil
}

func (s *Store) issuedLocked(public, secret string) bool {
	if _, ok := s.poolPublic[public]; ok {
		return true
	}
	if _, ok := slices.BinarySearch(s.pool, secret); ok {
		return true
	}
	if _, ok := s.usedValues[public]; ok {
		return true
	}
	if _, ok := s.usedValues[secret]; ok {
		return true
	}
	if _, ok := s.urls[public]; ok {
		return true
	}
	if _, ok := s.bySecret[secret]; ok {
		return true
	}
	return false
}

func (s *Store) AvailableKeys(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool), nil
}

func (s *Store) ConsumedKeys(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.used), nil
}

func (s *Store) UsedKeys(_ context.Context) ([]domain.UsedKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.used), nil
}

// GeneratedKeys returns the unconsumed pool in draw order.
func (s *Store) GeneratedKeys(_ context.Context) ([]domain.GeneratedKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]domain.GeneratedKey, len(s.pool))
	for i, v := range s.pool {
		keys[i] = domain.GeneratedKey{Value: v}
	}
	return keys, nil
}
