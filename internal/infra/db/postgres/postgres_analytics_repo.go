package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/repository"
)

var _ repository.AnalyticsRepository = (*PostgresAnalyticsRepo)(nil)

// PostgresAnalyticsRepo persists usage events. The user upsert and the event
// insert run in one transaction so the events table never references a user
// row that was not written.
type PostgresAnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAnalyticsRepo(pool *pgxpool.Pool) *PostgresAnalyticsRepo {
	return &PostgresAnalyticsRepo{pool: pool}
}

// InitSchema creates the analytics tables when they do not exist yet.
func (r *PostgresAnalyticsRepo) InitSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS bot_users (
  telegram_id   BIGINT PRIMARY KEY,
  username      TEXT,
  first_seen_at TIMESTAMPTZ NOT NULL,
  last_seen_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS bot_events (
  id          UUID PRIMARY KEY,
  telegram_id BIGINT NOT NULL REFERENCES bot_users (telegram_id),
  kind        TEXT NOT NULL,
  payload     TEXT,
  at          TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS bot_events_at_idx ON bot_events (at);
`
	_, err := r.pool.Exec(ctx, q)
	return err
}

func (r *PostgresAnalyticsRepo) LogEvent(ctx context.Context, ev *model.Event) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const upsertUser = `
INSERT INTO bot_users (telegram_id, username, first_seen_at, last_seen_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (telegram_id) DO UPDATE SET
  username = EXCLUDED.username,
  last_seen_at = EXCLUDED.last_seen_at;
`
	if _, err := tx.Exec(ctx, upsertUser, ev.TelegramID, ev.Username, ev.At); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	const insertEvent = `
INSERT INTO bot_events (id, telegram_id, kind, payload, at)
VALUES ($1, $2, $3, $4, $5);
`
	if _, err := tx.Exec(ctx, insertEvent, ev.ID, ev.TelegramID, string(ev.Kind), ev.Payload, ev.At); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresAnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bot_users;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *PostgresAnalyticsRepo) CountEventsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bot_events WHERE at >= $1;`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (r *PostgresAnalyticsRepo) CountEventsByKindSince(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT kind, COUNT(*) FROM bot_events WHERE at >= $1 GROUP BY kind;`, since)
	if err != nil {
		return nil, fmt.Errorf("count events by kind: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		out[kind] = n
	}
	return out, rows.Err()
}
