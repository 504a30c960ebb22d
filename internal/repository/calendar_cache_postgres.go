package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type CalendarCacheRepo struct {
	db *pgxpool.Pool
}

func NewCalendarCacheRepository(db *pgxpool.Pool) *CalendarCacheRepo {
	return &CalendarCacheRepo{
		db: db,
	}
}

func (r *CalendarCacheRepo) Get(ctx context.Context) (*domain.CalendarCache, error) {
	query := `
		SELECT id, events, refreshed_at, range_start, range_end
		FROM calendar_events_cache
		WHERE id = 'default'
	`

	var c domain.CalendarCache
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID,
		&c.Events,
		&c.RefreshedAt,
		&c.RangeStart,
		&c.RangeEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения кэша событий календаря: %w", err)
	}

	return &c, nil
}

func (r *CalendarCacheRepo) Upsert(ctx context.Context, cache domain.CalendarCache) error {
	query := `
		INSERT INTO calendar_events_cache (id, events, refreshed_at, range_start, range_end)
		VALUES ('default', $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			events = EXCLUDED.events,
			refreshed_at = EXCLUDED.refreshed_at,
			range_start = EXCLUDED.range_start,
			range_end = EXCLUDED.range_end
	`

	_, err := r.db.Exec(ctx, query, cache.Events, cache.RefreshedAt, cache.RangeStart, cache.RangeEnd)
	if err != nil {
		return fmt.Errorf("ошибка сохранения кэша событий календаря: %w", err)
	}

	return nil
}
