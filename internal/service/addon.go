package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type AddonServiceImpl struct {
	repo   repository.AddonRepository
	logger *zap.Logger
}

func NewAddonService(repo repository.AddonRepository, logger *zap.Logger) *AddonServiceImpl {
	return &AddonServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *AddonServiceImpl) Create(ctx context.Context, dto domain.CreateAddonDTO) (*domain.Addon, error) {
	addon := domain.Addon{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Categories:  dto.Categories,
		Active:      dto.Active,
		Order:       dto.Order,
		CreatedAt:   time.Now(),
	}
	if addon.Categories == nil {
		addon.Categories = []string{}
	}

	if err := s.repo.Create(ctx, addon); err != nil {
		return nil, err
	}

	s.logger.Info("создана дополнительная услуга", zap.String("addon_id", addon.ID))

	return &addon, nil
}

func (s *AddonServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateAddonDTO) (*domain.Addon, error) {
	addon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		addon.Name = *dto.Name
	}
	if dto.Description != nil {
		addon.Description = *dto.Description
	}
	if dto.Price != nil {
		addon.Price = *dto.Price
	}
	if dto.Categories != nil {
		addon.Categories = *dto.Categories
	}
	if dto.Active != nil {
		addon.Active = *dto.Active
	}
	if dto.Order != nil {
		addon.Order = *dto.Order
	}

	if err := s.repo.Update(ctx, *addon); err != nil {
		return nil, err
	}

	return addon, nil
}

func (s *AddonServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List возвращает услуги, применимые к типу съемки; пустой sessionType
// не фильтрует.
func (s *AddonServiceImpl) List(ctx context.Context, activeOnly bool, sessionType string) ([]domain.Addon, error) {
	addons, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	if sessionType == "" {
		return addons, nil
	}

	filtered := make([]domain.Addon, 0, len(addons))
	for _, addon := range addons {
		if addon.AppliesTo(sessionType) {
			filtered = append(filtered, addon)
		}
	}

	return filtered, nil
}
