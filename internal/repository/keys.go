package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shortlink/internal/domain"
)

// AddKeys inserts candidates that collide with nothing already issued: not
// in the pool, not consumed, not installed as a url, by full value or by
// public segment. It returns how many were inserted.
func (s *Store) AddKeys(ctx context.Context, values []string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, v := range values {
		public, secret := domain.SplitKey(v)
		batch.Queue(
			`INSERT INTO generated_keys (key_value, public_key)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM used_keys WHERE key_value = $1 OR public_key = $2)
			  AND NOT EXISTS (SELECT 1 FROM urls WHERE short_key = $2 OR secret_key = $1)
			ON CONFLICT DO NOTHING`,
			secret, public,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()

	inserted := 0
	for range values {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert generated key: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func (s *Store) AvailableKeys(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM generated_keys`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count generated keys: %w", err)
	}
	return n, nil
}

func (s *Store) ConsumedKeys(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM used_keys`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count used keys: %w", err)
	}
	return n, nil
}

func (s *Store) UsedKeys(ctx context.Context) ([]domain.UsedKey, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, key_value, user_id FROM used_keys ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list used keys: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UsedKey, error) {
		var k domain.UsedKey
		err := row.Scan(&k.ID, &k.Value, &k.OwnerUserID)
		return k, err
	})
}
