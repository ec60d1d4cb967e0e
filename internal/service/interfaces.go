package service

//go:generate go run github.com/vektra/mockery/v2@v2.53.3

import (
	"context"

	"shortlink/internal/domain"
)

type URLRepository interface {
	FindByOwnerAndTarget(ctx context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error)
	FindByPublicKey(ctx context.Context, key string) (*domain.ShortURL, error)
	FindBySecretKey(ctx context.Context, secretKey string) (*domain.ShortURL, error)
	Allocate(ctx context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error)
	IncrementClicks(ctx context.Context, key string) error
	SetActive(ctx context.Context, secretKey string, active bool) (*domain.ShortURL, error)
	DeleteBySecretKey(ctx context.Context, secretKey string) (*domain.ShortURL, error)
}

type KeyPoolRepository interface {
	AddKeys(ctx context.Context, values []string) (int, error)
	AvailableKeys(ctx context.Context) (int, error)
	ConsumedKeys(ctx context.Context) (int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	FindUserIDByAPIKey(ctx context.Context, apiKey string) (int64, error)
}

type UserResolver interface {
	ResolveUserID(ctx context.Context, apiKey string) (int64, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, targetURL string)
	Delete(ctx context.Context, key string)
}

type KeyGenerator interface {
	Generate() (string, error)
}

type APIKeyGenerator interface {
	Generate() (string, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
