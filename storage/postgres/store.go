package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nft-ticketing-backend/redemption"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS ticket_validations (
	contract_address TEXT NOT NULL,
	token_id TEXT NOT NULL,
	event_id TEXT NOT NULL,
	tier_id TEXT NOT NULL,
	is_used BOOLEAN NOT NULL DEFAULT FALSE,
	used_at TIMESTAMPTZ NULL,
	validated_by TEXT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (contract_address, token_id)
)`

const selectCols = `contract_address, token_id, event_id, tier_id, is_used, used_at, validated_by, created_at`

// Store keeps validation records in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Create(ctx context.Context, r redemption.Record) error {
	const stmt = `
INSERT INTO ticket_validations (contract_address, token_id, event_id, tier_id, is_used, created_at)
VALUES ($1, $2, $3, $4, FALSE, $5)
ON CONFLICT (contract_address, token_id) DO NOTHING`

	tag, err := s.pool.Exec(ctx, stmt, r.ContractAddress, r.TokenID, r.EventID, r.TierID, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return redemption.ErrDuplicateTicket
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key redemption.Key) (redemption.Record, error) {
	const query = `SELECT ` + selectCols + ` FROM ticket_validations WHERE contract_address = $1 AND token_id = $2`

	r, err := scanRecord(s.pool.QueryRow(ctx, query, key.ContractAddress, key.TokenID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return redemption.Record{}, redemption.ErrNotFound
		}
		return redemption.Record{}, fmt.Errorf("get ticket: %w", err)
	}
	return r, nil
}

// MarkUsed updates and returns the row in one statement; no row back means the
// ticket is either unknown or already used.
func (s *Store) MarkUsed(ctx context.Context, key redemption.Key, usedAt time.Time, validatedBy string) (redemption.Record, error) {
	const stmt = `
UPDATE ticket_validations
SET is_used = TRUE, used_at = $3, validated_by = $4
WHERE contract_address = $1 AND token_id = $2 AND is_used = FALSE
RETURNING ` + selectCols

	r, err := scanRecord(s.pool.QueryRow(ctx, stmt, key.ContractAddress, key.TokenID, usedAt, validatedBy))
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return redemption.Record{}, fmt.Errorf("mark ticket used: %w", err)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return redemption.Record{}, err
	}
	return redemption.Record{}, &redemption.AlreadyRedeemedError{Record: current}
}

func scanRecord(row pgx.Row) (redemption.Record, error) {
	var (
		r           redemption.Record
		usedAt      *time.Time
		validatedBy *string
	)
	if err := row.Scan(&r.ContractAddress, &r.TokenID, &r.EventID, &r.TierID, &r.IsUsed, &usedAt, &validatedBy, &r.CreatedAt); err != nil {
		return redemption.Record{}, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if usedAt != nil {
		t := usedAt.UTC()
		r.UsedAt = &t
	}
	if validatedBy != nil {
		r.ValidatedBy = *validatedBy
	}
	return r, nil
}
