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

type PackageRepo struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) *PackageRepo {
	return &PackageRepo{
		db: db,
	}
}

func (r *PackageRepo) Create(ctx context.Context, pkg domain.Package) error {
	query := `
		INSERT INTO packages (id, name, session_type, price, duration, includes,
			popular, active, description, image_url, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.SessionType,
		pkg.Price,
		pkg.Duration,
		pkg.Includes,
		pkg.Popular,
		pkg.Active,
		pkg.Description,
		pkg.ImageURL,
		pkg.Order,
		pkg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания пакета: %w", err)
	}

	return nil
}

func (r *PackageRepo) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := `
		SELECT id, name, session_type, price, duration, includes, popular, active,
			description, image_url, sort_order, created_at
		FROM packages
		WHERE id = $1
	`

	var p domain.Package
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.SessionType,
		&p.Price,
		&p.Duration,
		&p.Includes,
		&p.Popular,
		&p.Active,
		&p.Description,
		&p.ImageURL,
		&p.Order,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пакета: %w", err)
	}

	return &p, nil
}

func (r *PackageRepo) Update(ctx context.Context, pkg domain.Package) error {
	query := `
		UPDATE packages
		SET name = $1, session_type = $2, price = $3, duration = $4, includes = $5,
			popular = $6, active = $7, description = $8, image_url = $9,
			sort_order = $10
		WHERE id = $11
	`

	tag, err := r.db.Exec(ctx, query,
		pkg.Name,
		pkg.SessionType,
		pkg.Price,
		pkg.Duration,
		pkg.Includes,
		pkg.Popular,
		pkg.Active,
		pkg.Description,
		pkg.ImageURL,
		pkg.Order,
		pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления пакета: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PackageRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM packages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пакета: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *PackageRepo) List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error) {
	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.SessionType != nil {
		conditions = append(conditions, fmt.Sprintf("session_type = $%d", argID))
		args = append(args, *filter.SessionType)
		argID++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "active = TRUE")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, name, session_type, price, duration, includes, popular, active,
			description, image_url, sort_order, created_at
		FROM packages %s
		ORDER BY sort_order, created_at
	`, whereClause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пакетов: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.SessionType,
			&p.Price,
			&p.Duration,
			&p.Includes,
			&p.Popular,
			&p.Active,
			&p.Description,
			&p.ImageURL,
			&p.Order,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования пакета: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return packages, nil
}
