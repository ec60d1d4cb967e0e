package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	CacheRistretto = "ristretto"
	CacheRedis     = "redis"
	CacheNone      = "none"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Pool       PoolConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Metrics    MetricsConfig
	Validation ValidationConfig
	Pprof      PprofConfig
	Admin      AdminConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Storage  string `env:"STORAGE" envDefault:"postgres"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlink"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
}

type AppConfig struct {
	BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type PoolConfig struct {
	TargetSize            int `env:"POOL_TARGET_SIZE" envDefault:"1000"`
	SegmentLength         int `env:"KEY_SEGMENT_LENGTH" envDefault:"8"`
	ReplenishBatch        int `env:"POOL_REPLENISH_BATCH" envDefault:"500"`
	MaxAllocationAttempts int `env:"POOL_MAX_ALLOCATION_ATTEMPTS" envDefault:"5"`
}

type CacheConfig struct {
	Backend     string        `env:"CACHE_BACKEND" envDefault:"ristretto"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix   string `env:"REDIS_KEY_PREFIX" envDefault:"shortlink:"`
}

type MetricsConfig struct {
	Enabled        bool          `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int           `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int           `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int           `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	InfraInterval  time.Duration `env:"METRICS_INFRA_INTERVAL" envDefault:"10s"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
	MaxUsernameLength  int    `env:"MAX_USERNAME_LENGTH" envDefault:"64"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type AdminConfig struct {
	Secret string `env:"ADMIN_SECRET"`
}

// Load reads an optional .env file from the working directory and then
// parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
