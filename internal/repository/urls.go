package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shortlink/internal/domain"
)

const urlColumns = "short_key, secret_key, target_url, is_active, clicks, user_id"

func scanURL(row pgx.Row) (*domain.ShortURL, error) {
	var u domain.ShortURL
	err := row.Scan(&u.Key, &u.SecretKey, &u.TargetURL, &u.IsActive, &u.Clicks, &u.OwnerUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) FindByOwnerAndTarget(ctx context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls
		WHERE user_id = $1 AND target_url = $2
		ORDER BY created_at
		LIMIT 1`,
		ownerID, targetURL,
	)
	return scanURL(row)
}

func (s *Store) FindByPublicKey(ctx context.Context, key string) (*domain.ShortURL, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls WHERE short_key = $1 AND is_active`,
		key,
	)
	return scanURL(row)
}

func (s *Store) FindBySecretKey(ctx context.Context, secretKey string) (*domain.ShortURL, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+urlColumns+` FROM urls WHERE secret_key = $1`,
		secretKey,
	)
	return scanURL(row)
}

// Allocate draws the smallest pool key not locked by another allocation and
// installs it as a new url row in one transaction. Losing the draw anyway, or
// hitting a unique constraint, yields domain.ErrDuplicateKey so the caller
// can redraw. A key that collides with an issued one is removed from the
// pool after the rollback, otherwise every redraw would pick it again.
func (s *Store) Allocate(ctx context.Context, ownerID int64, targetURL string) (*domain.ShortURL, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var drawn string
	err = tx.QueryRow(ctx,
		`SELECT key_value FROM generated_keys ORDER BY key_value LIMIT 1 FOR UPDATE SKIP LOCKED`,
	).Scan(&drawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPoolExhausted
		}
		return nil, fmt.Errorf("failed to draw key: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM generated_keys WHERE key_value = $1`, drawn)
	if err != nil {
		return nil, fmt.Errorf("failed to consume key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDuplicateKey
	}

	u := domain.NewShortURL(drawn, ownerID, targetURL)
	if err := installKey(ctx, tx, &u); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = tx.Rollback(ctx)
			return nil, s.discardKey(ctx, drawn)
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit allocation: %w", err)
	}
	return &u, nil
}

func installKey(ctx context.Context, tx pgx.Tx, u *domain.ShortURL) error {
	if err := insertURL(ctx, tx, u); err != nil {
		return err
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO used_keys (key_value, public_key, user_id) VALUES ($1, $2, $3)`,
		u.SecretKey, u.Key, u.OwnerUserID,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("failed to record used key: %w", err)
	}
	return nil
}

// discardKey drops a pooled key that can never be installed and reports the
// collision as domain.ErrDuplicateKey.
func (s *Store) discardKey(ctx context.Context, value string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM generated_keys WHERE key_value = $1`, value); err != nil {
		return fmt.Errorf("failed to discard colliding key: %w", err)
	}
	return domain.ErrDuplicateKey
}

func insertURL(ctx context.Context, tx pgx.Tx, u *domain.ShortURL) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO urls (`+urlColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.Key, u.SecretKey, u.TargetURL, u.IsActive, u.Clicks, u.OwnerUserID,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert url: %w", err)
	}
	return nil
}

// IncrementClicks counts a redirect for an active key. Unknown and inactive
// keys yield domain.ErrNotFound.
func (s *Store) IncrementClicks(ctx context.Context, key string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE urls SET clicks = clicks + 1 WHERE short_key = $1 AND is_active`, key)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) SetActive(ctx context.Context, secretKey string, active bool) (*domain.ShortURL, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE urls SET is_active = $2 WHERE secret_key = $1 RETURNING `+urlColumns,
		secretKey, active,
	)
	return scanURL(row)
}

func (s *Store) DeleteBySecretKey(ctx context.Context, secretKey string) (*domain.ShortURL, error) {
	row := s.pool.QueryRow(ctx,
		`DELETE FROM urls WHERE secret_key = $1 RETURNING `+urlColumns,
		secretKey,
	)
	return scanURL(row)
}
