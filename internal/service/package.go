package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type PackageServiceImpl struct {
	repo   repository.PackageRepository
	logger *zap.Logger
}

func NewPackageService(repo repository.PackageRepository, logger *zap.Logger) *PackageServiceImpl {
	return &PackageServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// EnsureDefaults записывает стартовый прайс, если таблица пакетов пуста.
func (s *PackageServiceImpl) EnsureDefaults(ctx context.Context) error {
	existing, err := s.repo.List(ctx, domain.PackageFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, pkg := range domain.DefaultPackages() {
		pkg.CreatedAt = time.Now()
		if err := s.repo.Create(ctx, pkg); err != nil {
			return err
		}
	}

	s.logger.Info("записан стартовый прайс", zap.Int("packages", len(domain.DefaultPackages())))

	return nil
}

func (s *PackageServiceImpl) Create(ctx context.Context, dto domain.CreatePackageDTO) (*domain.Package, error) {
	pkg := domain.Package{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		SessionType: dto.SessionType,
		Price:       dto.Price,
		Duration:    dto.Duration,
		Includes:    dto.Includes,
		Popular:     dto.Popular,
		Active:      dto.Active,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Order:       dto.Order,
		CreatedAt:   time.Now(),
	}
	if pkg.Includes == nil {
		pkg.Includes = []string{}
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.logger.Info("создан пакет", zap.String("package_id", pkg.ID), zap.String("name", pkg.Name))

	return &pkg, nil
}

func (s *PackageServiceImpl) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PackageServiceImpl) Update(ctx context.Context, id string, dto domain.UpdatePackageDTO) (*domain.Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		pkg.Name = *dto.Name
	}
	if dto.SessionType != nil {
		pkg.SessionType = *dto.SessionType
	}
	if dto.Price != nil {
		pkg.Price = *dto.Price
	}
	if dto.Duration != nil {
		pkg.Duration = *dto.Duration
	}
	if dto.Includes != nil {
		pkg.Includes = *dto.Includes
	}
	if dto.Popular != nil {
		pkg.Popular = *dto.Popular
	}
	if dto.Active != nil {
		pkg.Active = *dto.Active
	}
	if dto.Description != nil {
		pkg.Description = *dto.Description
	}
	if dto.ImageURL != nil {
		pkg.ImageURL = *dto.ImageURL
	}
	if dto.Order != nil {
		pkg.Order = *dto.Order
	}

	if err := s.repo.Update(ctx, *pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (s *PackageServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PackageServiceImpl) List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error) {
	return s.repo.List(ctx, filter)
}
