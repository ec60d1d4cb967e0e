package memory

import (
	"context"
	"slices"

	"shortlink/internal/domain"
)

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	if _, ok := s.byAPIKey[u.APIKey]; ok {
		return domain.ErrDuplicateKey
	}

	s.nextUserID++
	u.ID = s.nextUserID
	s.users[u.ID] = *u
	s.byEmail[u.Email] = u.ID
	s.byAPIKey[u.APIKey] = u.ID
	return nil
}

func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		u.APIKey = ""
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b domain.User) int {
		return int(a.ID - b.ID)
	})
	return users, nil
}

func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	delete(s.byEmail, u.Email)
	delete(s.byAPIKey, u.APIKey)
	return nil
}

func (s *Store) FindUserIDByAPIKey(_ context.Context, apiKey string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byAPIKey[apiKey]
	if !ok {
		return 0, domain.ErrInvalidCredential
	}
	return id, nil
}
