package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shortlink/internal/domain"
)

const maxAPIKeyAttempts = 3

type UserService struct {
	repo    UserRepository
	apiKeys APIKeyGenerator
	logger  *slog.Logger
}

func NewUserService(repo UserRepository, apiKeys APIKeyGenerator, logger *slog.Logger) *UserService {
	return &UserService{
		repo:    repo,
		apiKeys: apiKeys,
		logger:  logger,
	}
}

// Register creates a user with a freshly minted API key. A colliding API key
// is regenerated; a taken email is returned as domain.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, username, email string) (*domain.User, error) {
	for range maxAPIKeyAttempts {
		apiKey, err := s.apiKeys.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate api key: %w", err)
		}

		u := &domain.User{Username: username, Email: email, APIKey: apiKey}
		err = s.repo.CreateUser(ctx, u)
		switch {
		case err == nil:
			s.logger.Info("user registered", slog.Int64("user_id", u.ID))
			return u, nil
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, err
		case errors.Is(err, domain.ErrDuplicateKey):
			continue
		default:
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to create user: %w", domain.ErrDuplicateKey)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) ResolveUserID(ctx context.Context, apiKey string) (int64, error) {
	if apiKey == "" {
		return 0, domain.ErrInvalidCredential
	}
	id, err := s.repo.FindUserIDByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to resolve api key: %w", err)
	}
	return id, nil
}
