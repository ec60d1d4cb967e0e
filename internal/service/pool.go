package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shortlink/internal/domain"
)

// maxStaleRounds bounds consecutive replenish rounds that insert nothing,
// which only happens when the key space is close to saturated.
const maxStaleRounds = 3

var ErrKeySpaceSaturated = errors.New("no new keys could be generated")

type PoolService struct {
	repo      KeyPoolRepository
	generator KeyGenerator
	batchSize int
	logger    *slog.Logger
}

func NewPoolService(repo KeyPoolRepository, generator KeyGenerator, batchSize int, logger *slog.Logger) *PoolService {
	return &PoolService{
		repo:      repo,
		generator: generator,
		batchSize: max(1, batchSize),
		logger:    logger,
	}
}

// Replenish generates keys until the pool holds at least target unconsumed
// keys and reports how many were added. Candidates colliding with any key
// ever issued are dropped by the repository.
func (s *PoolService) Replenish(ctx context.Context, target int) (int, error) {
	available, err := s.repo.AvailableKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count available keys: %w", err)
	}

	added, stale := 0, 0
	for available < target {
		n := min(target-available, s.batchSize)
		candidates := make([]string, 0, n)
		for range n {
			value, err := s.generator.Generate()
			if err != nil {
				return added, fmt.Errorf("failed to generate key: %w", err)
			}
			candidates = append(candidates, value)
		}

		inserted, err := s.repo.AddKeys(ctx, candidates)
		if err != nil {
			return added, fmt.Errorf("failed to add keys: %w", err)
		}
		added += inserted

		if inserted == 0 {
			stale++
			if stale >= maxStaleRounds {
				return added, ErrKeySpaceSaturated
			}
		} else {
			stale = 0
		}

		available, err = s.repo.AvailableKeys(ctx)
		if err != nil {
			return added, fmt.Errorf("failed to count available keys: %w", err)
		}
	}

	if added > 0 {
		s.logger.Info("key pool replenished",
			slog.Int("added", added),
			slog.Int("available", available))
	}
	return added, nil
}

func (s *PoolService) Stats(ctx context.Context) (domain.PoolStats, error) {
	available, err := s.repo.AvailableKeys(ctx)
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("failed to count available keys: %w", err)
	}
	consumed, err := s.repo.ConsumedKeys(ctx)
	if err != nil {
		return domain.PoolStats{}, fmt.Errorf("failed to count consumed keys: %w", err)
	}
	return domain.PoolStats{Available: available, Consumed: consumed}, nil
}
