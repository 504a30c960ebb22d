package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type SlotRepo struct {
	db *pgxpool.Pool
}

func NewSlotRepository(db *pgxpool.Pool) *SlotRepo {
	return &SlotRepo{
		db: db,
	}
}

func (r *SlotRepo) CreateBlocked(ctx context.Context, slot domain.BlockedSlot) error {
	query := `
		INSERT INTO blocked_slots (id, date, time, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, slot.ID, slot.Date, slot.Time, slot.Reason, slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания блокировки слота: %w", err)
	}

	return nil
}

func (r *SlotRepo) DeleteBlocked(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM blocked_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления блокировки слота: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *SlotRepo) BlockedByDateRange(ctx context.Context, startDate, endDate string) ([]domain.BlockedSlot, error) {
	query := `
		SELECT id, date, time, reason, created_at
		FROM blocked_slots
		WHERE date >= $1 AND date <= $2
		ORDER BY date, time
	`

	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения блокировок слотов: %w", err)
	}
	defer rows.Close()

	var slots []domain.BlockedSlot
	for rows.Next() {
		var s domain.BlockedSlot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.Reason, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования блокировки слота: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return slots, nil
}

func (r *SlotRepo) CreateCustom(ctx context.Context, slot domain.CustomSlot) error {
	query := `
		INSERT INTO custom_slots (id, date, time, session_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, slot.ID, slot.Date, slot.Time, slot.SessionType, slot.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConflict
		}
		return fmt.Errorf("ошибка создания дополнительного слота: %w", err)
	}

	return nil
}

func (r *SlotRepo) DeleteCustom(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM custom_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления дополнительного слота: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *SlotRepo) CustomByDateRange(ctx context.Context, startDate, endDate string) ([]domain.CustomSlot, error) {
	query := `
		SELECT id, date, time, session_type, created_at
		FROM custom_slots
		WHERE date >= $1 AND date <= $2
		ORDER BY date, time
	`

	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения дополнительных слотов: %w", err)
	}
	defer rows.Close()

	var slots []domain.CustomSlot
	for rows.Next() {
		var s domain.CustomSlot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.SessionType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования дополнительного слота: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return slots, nil
}
