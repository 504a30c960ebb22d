package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type QuestionnaireServiceImpl struct {
	repo   repository.QuestionnaireRepository
	logger *zap.Logger
}

func NewQuestionnaireService(repo repository.QuestionnaireRepository, logger *zap.Logger) *QuestionnaireServiceImpl {
	return &QuestionnaireServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *QuestionnaireServiceImpl) Create(ctx context.Context, dto domain.CreateQuestionnaireDTO) (*domain.Questionnaire, error) {
	questionnaire := domain.Questionnaire{
		ID:          uuid.New().String(),
		SessionType: dto.SessionType,
		Title:       dto.Title,
		Description: dto.Description,
		Questions:   dto.Questions,
		Active:      dto.Active,
		CreatedAt:   time.Now(),
	}
	if questionnaire.Questions == nil {
		questionnaire.Questions = []domain.Question{}
	}

	if err := s.repo.Create(ctx, questionnaire); err != nil {
		return nil, err
	}

	s.logger.Info("создана анкета",
		zap.String("questionnaire_id", questionnaire.ID),
		zap.String("session_type", questionnaire.SessionType),
	)

	return &questionnaire, nil
}

func (s *QuestionnaireServiceImpl) GetByID(ctx context.Context, id string) (*domain.Questionnaire, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *QuestionnaireServiceImpl) GetActiveBySessionType(ctx context.Context, sessionType string) (*domain.Questionnaire, error) {
	return s.repo.GetActiveBySessionType(ctx, sessionType)
}

func (s *QuestionnaireServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateQuestionnaireDTO) (*domain.Questionnaire, error) {
	questionnaire, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		questionnaire.Title = *dto.Title
	}
	if dto.Description != nil {
		questionnaire.Description = *dto.Description
	}
	if dto.Questions != nil {
		questionnaire.Questions = *dto.Questions
	}
	if dto.Active != nil {
		questionnaire.Active = *dto.Active
	}

	if err := s.repo.Update(ctx, *questionnaire); err != nil {
		return nil, err
	}

	return questionnaire, nil
}

func (s *QuestionnaireServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *QuestionnaireServiceImpl) List(ctx context.Context) ([]domain.Questionnaire, error) {
	return s.repo.List(ctx)
}
