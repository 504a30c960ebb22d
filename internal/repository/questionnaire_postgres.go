package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type QuestionnaireRepo struct {
	db *pgxpool.Pool
}

func NewQuestionnaireRepository(db *pgxpool.Pool) *QuestionnaireRepo {
	return &QuestionnaireRepo{
		db: db,
	}
}

func (r *QuestionnaireRepo) Create(ctx context.Context, questionnaire domain.Questionnaire) error {
	query := `
		INSERT INTO questionnaires (id, session_type, title, description, questions, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		questionnaire.ID,
		questionnaire.SessionType,
		questionnaire.Title,
		questionnaire.Description,
		questionnaire.Questions,
		questionnaire.Active,
		questionnaire.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания анкеты: %w", err)
	}

	return nil
}

func (r *QuestionnaireRepo) GetByID(ctx context.Context, id string) (*domain.Questionnaire, error) {
	query := `
		SELECT id, session_type, title, description, questions, active, created_at
		FROM questionnaires
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *QuestionnaireRepo) GetActiveBySessionType(ctx context.Context, sessionType string) (*domain.Questionnaire, error) {
	query := `
		SELECT id, session_type, title, description, questions, active, created_at
		FROM questionnaires
		WHERE session_type = $1 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, sessionType))
}

func (r *QuestionnaireRepo) scanOne(row pgx.Row) (*domain.Questionnaire, error) {
	var q domain.Questionnaire
	err := row.Scan(
		&q.ID,
		&q.SessionType,
		&q.Title,
		&q.Description,
		&q.Questions,
		&q.Active,
		&q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения анкеты: %w", err)
	}

	return &q, nil
}

func (r *QuestionnaireRepo) Update(ctx context.Context, questionnaire domain.Questionnaire) error {
	query := `
		UPDATE questionnaires
		SET title = $1, description = $2, questions = $3, active = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		questionnaire.Title,
		questionnaire.Description,
		questionnaire.Questions,
		questionnaire.Active,
		questionnaire.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления анкеты: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *QuestionnaireRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questionnaires WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления анкеты: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *QuestionnaireRepo) List(ctx context.Context) ([]domain.Questionnaire, error) {
	query := `
		SELECT id, session_type, title, description, questions, active, created_at
		FROM questionnaires
		ORDER BY session_type, created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка анкет: %w", err)
	}
	defer rows.Close()

	var questionnaires []domain.Questionnaire
	for rows.Next() {
		var q domain.Questionnaire
		err := rows.Scan(
			&q.ID,
			&q.SessionType,
			&q.Title,
			&q.Description,
			&q.Questions,
			&q.Active,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования анкеты: %w", err)
		}
		questionnaires = append(questionnaires, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return questionnaires, nil
}
