package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type FAQServiceImpl struct {
	repo   repository.FAQRepository
	logger *zap.Logger
}

func NewFAQService(repo repository.FAQRepository, logger *zap.Logger) *FAQServiceImpl {
	return &FAQServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *FAQServiceImpl) Create(ctx context.Context, dto domain.CreateFAQDTO) (*domain.FAQ, error) {
	faq := domain.FAQ{
		ID:        uuid.New().String(),
		Question:  dto.Question,
		Answer:    dto.Answer,
		Category:  dto.Category,
		Active:    dto.Active,
		Order:     dto.Order,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, err
	}

	return &faq, nil
}

func (s *FAQServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateFAQDTO) (*domain.FAQ, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Question != nil {
		faq.Question = *dto.Question
	}
	if dto.Answer != nil {
		faq.Answer = *dto.Answer
	}
	if dto.Category != nil {
		faq.Category = *dto.Category
	}
	if dto.Active != nil {
		faq.Active = *dto.Active
	}
	if dto.Order != nil {
		faq.Order = *dto.Order
	}

	if err := s.repo.Update(ctx, *faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (s *FAQServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *FAQServiceImpl) List(ctx context.Context, category *string, activeOnly bool) ([]domain.FAQ, error) {
	return s.repo.List(ctx, category, activeOnly)
}
