package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type ContractRepo struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepo {
	return &ContractRepo{
		db: db,
	}
}

func (r *ContractRepo) Get(ctx context.Context) (*domain.ContractTemplate, error) {
	query := `
		SELECT id, title, content, smart_fields, updated_at
		FROM contract_template
		WHERE id = 'default'
	`

	var t domain.ContractTemplate
	err := r.db.QueryRow(ctx, query).Scan(
		&t.ID,
		&t.Title,
		&t.Content,
		&t.SmartFields,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения шаблона договора: %w", err)
	}

	return &t, nil
}

func (r *ContractRepo) Upsert(ctx context.Context, template domain.ContractTemplate) error {
	query := `
		INSERT INTO contract_template (id, title, content, smart_fields, updated_at)
		VALUES ('default', $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			smart_fields = EXCLUDED.smart_fields,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		template.Title,
		template.Content,
		template.SmartFields,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения шаблона договора: %w", err)
	}

	return nil
}
