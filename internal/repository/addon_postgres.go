package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type AddonRepo struct {
	db *pgxpool.Pool
}

func NewAddonRepository(db *pgxpool.Pool) *AddonRepo {
	return &AddonRepo{
		db: db,
	}
}

func (r *AddonRepo) Create(ctx context.Context, addon domain.Addon) error {
	query := `
		INSERT INTO addons (id, name, description, price, categories, active, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.Name,
		addon.Description,
		addon.Price,
		addon.Categories,
		addon.Active,
		addon.Order,
		addon.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания дополнительной услуги: %w", err)
	}

	return nil
}

func (r *AddonRepo) GetByID(ctx context.Context, id string) (*domain.Addon, error) {
	query := `
		SELECT id, name, description, price, categories, active, sort_order, created_at
		FROM addons
		WHERE id = $1
	`

	var a domain.Addon
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Price,
		&a.Categories,
		&a.Active,
		&a.Order,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения дополнительной услуги: %w", err)
	}

	return &a, nil
}

func (r *AddonRepo) Update(ctx context.Context, addon domain.Addon) error {
	query := `
		UPDATE addons
		SET name = $1, description = $2, price = $3, categories = $4, active = $5,
			sort_order = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		addon.Name,
		addon.Description,
		addon.Price,
		addon.Categories,
		addon.Active,
		addon.Order,
		addon.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления дополнительной услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AddonRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM addons WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления дополнительной услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AddonRepo) List(ctx context.Context, activeOnly bool) ([]domain.Addon, error) {
	query := `
		SELECT id, name, description, price, categories, active, sort_order, created_at
		FROM addons
	`
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY sort_order, created_at"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка дополнительных услуг: %w", err)
	}
	defer rows.Close()

	var addons []domain.Addon
	for rows.Next() {
		var a domain.Addon
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Description,
			&a.Price,
			&a.Categories,
			&a.Active,
			&a.Order,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования дополнительной услуги: %w", err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return addons, nil
}
