package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type TestimonialRepo struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{
		db: db,
	}
}

func (r *TestimonialRepo) Create(ctx context.Context, testimonial domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, client_name, content, session_type, rating,
			approved, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		testimonial.ID,
		testimonial.ClientName,
		testimonial.Content,
		testimonial.SessionType,
		testimonial.Rating,
		testimonial.Approved,
		testimonial.Source,
		testimonial.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	return nil
}

func (r *TestimonialRepo) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	query := `
		SELECT id, client_name, content, session_type, rating, approved, source, created_at
		FROM testimonials
		WHERE id = $1
	`

	var t domain.Testimonial
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.ClientName,
		&t.Content,
		&t.SessionType,
		&t.Rating,
		&t.Approved,
		&t.Source,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения отзыва: %w", err)
	}

	return &t, nil
}

func (r *TestimonialRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE testimonials SET approved = $1 WHERE id = $2", approved, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса отзыва: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TestimonialRepo) List(ctx context.Context, approvedOnly bool) ([]domain.Testimonial, error) {
	query := `
		SELECT id, client_name, content, session_type, rating, approved, source, created_at
		FROM testimonials
	`
	if approvedOnly {
		query += " WHERE approved = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка отзывов: %w", err)
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		err := rows.Scan(
			&t.ID,
			&t.ClientName,
			&t.Content,
			&t.SessionType,
			&t.Rating,
			&t.Approved,
			&t.Source,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования отзыва: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return testimonials, nil
}
