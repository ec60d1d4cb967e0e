package handler

//go:generate go run github.com/vektra/mockery/v2@v2.53.3

import (
	"context"

	"shortlink/internal/domain"
)

type URLService interface {
	CreateShortURL(ctx context.Context, apiKey, targetURL string) (*domain.ShortURL, error)
	Redeem(ctx context.Context, key string) (string, error)
	GetBySecret(ctx context.Context, secretKey string) (*domain.ShortURL, error)
	SetActive(ctx context.Context, secretKey string, active bool) (*domain.ShortURL, error)
	DeleteBySecret(ctx context.Context, secretKey string) (*domain.ShortURL, error)
}

type UserService interface {
	Register(ctx context.Context, username, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type PoolService interface {
	Replenish(ctx context.Context, target int) (int, error)
	Stats(ctx context.Context) (domain.PoolStats, error)
}

type Validator interface {
	ValidateURL(url string) error
	ValidateUser(username, email string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
