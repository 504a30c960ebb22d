package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/pkg/validator"
)

type ContactServiceImpl struct {
	repo   repository.ContactRepository
	logger *zap.Logger
}

func NewContactService(repo repository.ContactRepository, logger *zap.Logger) *ContactServiceImpl {
	return &ContactServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactServiceImpl) Create(ctx context.Context, dto domain.CreateContactMessageDTO) (*domain.ContactMessage, error) {
	message := domain.ContactMessage{
		ID:        uuid.New().String(),
		Name:      validator.SanitizeString(dto.Name),
		Email:     dto.Email,
		Phone:     validator.FormatPhone(dto.Phone),
		Message:   validator.SanitizeString(dto.Message),
		CreatedAt: time.Now(),
	}
	if dto.Phone == "" {
		message.Phone = ""
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("получено сообщение с формы контактов", zap.String("message_id", message.ID))

	return &message, nil
}

func (s *ContactServiceImpl) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
