package service

import (
	"context"

	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type ContractServiceImpl struct {
	repo   repository.ContractRepository
	logger *zap.Logger
}

func NewContractService(repo repository.ContractRepository, logger *zap.Logger) *ContractServiceImpl {
	return &ContractServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContractServiceImpl) Get(ctx context.Context) (*domain.ContractTemplate, error) {
	template, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if template == nil {
		defaults := domain.DefaultContractTemplate()
		return &defaults, nil
	}
	return template, nil
}

func (s *ContractServiceImpl) Update(ctx context.Context, dto domain.UpdateContractTemplateDTO) (*domain.ContractTemplate, error) {
	template, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		template.Title = *dto.Title
	}
	if dto.Content != nil {
		template.Content = *dto.Content
	}
	if dto.SmartFields != nil {
		template.SmartFields = *dto.SmartFields
	}

	if err := s.repo.Upsert(ctx, *template); err != nil {
		return nil, err
	}

	s.logger.Info("обновлен шаблон договора")

	return template, nil
}
