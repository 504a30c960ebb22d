package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type FAQRepo struct {
	db *pgxpool.Pool
}

func NewFAQRepository(db *pgxpool.Pool) *FAQRepo {
	return &FAQRepo{
		db: db,
	}
}

func (r *FAQRepo) Create(ctx context.Context, faq domain.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, active, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.Active,
		faq.Order,
		faq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания вопроса FAQ: %w", err)
	}

	return nil
}

func (r *FAQRepo) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	query := `
		SELECT id, question, answer, category, active, sort_order, created_at
		FROM faqs
		WHERE id = $1
	`

	var f domain.FAQ
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.Question,
		&f.Answer,
		&f.Category,
		&f.Active,
		&f.Order,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения вопроса FAQ: %w", err)
	}

	return &f, nil
}

func (r *FAQRepo) Update(ctx context.Context, faq domain.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2, category = $3, active = $4, sort_order = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.Active,
		faq.Order,
		faq.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления вопроса FAQ: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FAQRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления вопроса FAQ: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *FAQRepo) List(ctx context.Context, category *string, activeOnly bool) ([]domain.FAQ, error) {
	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argID))
		args = append(args, *category)
		argID++
	}
	if activeOnly {
		conditions = append(conditions, "active = TRUE")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, question, answer, category, active, sort_order, created_at
		FROM faqs %s
		ORDER BY sort_order, created_at
	`, whereClause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка вопросов FAQ: %w", err)
	}
	defer rows.Close()

	var faqs []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		err := rows.Scan(
			&f.ID,
			&f.Question,
			&f.Answer,
			&f.Category,
			&f.Active,
			&f.Order,
			&f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования вопроса FAQ: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return faqs, nil
}
