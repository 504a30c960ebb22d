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

type PortfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{
		db: db,
	}
}

func (r *PortfolioRepo) Create(ctx context.Context, item domain.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (id, title, category, image_url, description,
			featured, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Category,
		item.ImageURL,
		item.Description,
		item.Featured,
		item.Order,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания работы портфолио: %w", err)
	}

	return nil
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	query := `
		SELECT id, title, category, image_url, description, featured, sort_order, created_at
		FROM portfolio_items
		WHERE id = $1
	`

	var item domain.PortfolioItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Category,
		&item.ImageURL,
		&item.Description,
		&item.Featured,
		&item.Order,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения работы портфолио: %w", err)
	}

	return &item, nil
}

func (r *PortfolioRepo) Update(ctx context.Context, item domain.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $1, category = $2, image_url = $3, description = $4,
			featured = $5, sort_order = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		item.Title,
		item.Category,
		item.ImageURL,
		item.Description,
		item.Featured,
		item.Order,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления работы портфолио: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PortfolioRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM portfolio_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления работы портфолио: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PortfolioRepo) List(ctx context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error) {
	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argID))
		args = append(args, *filter.Category)
		argID++
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, title, category, image_url, description, featured, sort_order, created_at
		FROM portfolio_items %s
		ORDER BY sort_order, created_at DESC
	`, whereClause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения портфолио: %w", err)
	}
	defer rows.Close()

	var items []domain.PortfolioItem
	for rows.Next() {
		var item domain.PortfolioItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.ImageURL,
			&item.Description,
			&item.Featured,
			&item.Order,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования работы портфолио: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return items, nil
}
