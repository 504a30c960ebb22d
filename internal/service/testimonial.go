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

type TestimonialServiceImpl struct {
	repo   repository.TestimonialRepository
	logger *zap.Logger
}

func NewTestimonialService(repo repository.TestimonialRepository, logger *zap.Logger) *TestimonialServiceImpl {
	return &TestimonialServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Create принимает отзыв клиента. Отзыв публикуется только после одобрения
// администратором.
func (s *TestimonialServiceImpl) Create(ctx context.Context, dto domain.CreateTestimonialDTO) (*domain.Testimonial, error) {
	rating := dto.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := domain.Testimonial{
		ID:          uuid.New().String(),
		ClientName:  validator.SanitizeString(dto.ClientName),
		Content:     validator.SanitizeString(dto.Content),
		SessionType: dto.SessionType,
		Rating:      rating,
		Source:      "website",
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	s.logger.Info("получен отзыв", zap.String("testimonial_id", testimonial.ID))

	return &testimonial, nil
}

func (s *TestimonialServiceImpl) Approve(ctx context.Context, id string, approved bool) error {
	return s.repo.SetApproved(ctx, id, approved)
}

func (s *TestimonialServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TestimonialServiceImpl) List(ctx context.Context, approvedOnly bool) ([]domain.Testimonial, error) {
	return s.repo.List(ctx, approvedOnly)
}
