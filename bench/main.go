package main

import (
	"fmt"
	"os"
	"time"

	"shortlink/bench/internal/attack"
	"shortlink/bench/internal/config"
	"shortlink/bench/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := seed.NewClient(cfg.BaseURL, cfg.SeedTimeout, cfg.Workers)

	apiKey := cfg.APIKey
	if apiKey == "" {
		email := cfg.Email
		if email == "" {
			email = fmt.Sprintf("bench-%d@example.com", time.Now().UnixNano())
		}
		apiKey, err = client.Register(cfg.Username, email)
		if err != nil {
			return fmt.Errorf("register failed: %w", err)
		}
		fmt.Printf("Registered bench user %s\n", email)
	}

	var keys []string
	if cfg.BenchType != "create" {
		keys, err = client.Seed(apiKey, cfg.SeedCount)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:     cfg.BaseURL,
		APIKey:      apiKey,
		Keys:        keys,
		Rate:        cfg.Rate,
		Duration:    cfg.Duration,
		CreateRatio: cfg.CreateRatio,
		Type:        cfg.BenchType,
	})
}
