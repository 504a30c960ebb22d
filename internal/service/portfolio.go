package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/internal/storage"
)

type PortfolioServiceImpl struct {
	repo        repository.PortfolioRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewPortfolioService(repo repository.PortfolioRepository, fileStorage storage.FileStorage, logger *zap.Logger) *PortfolioServiceImpl {
	return &PortfolioServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *PortfolioServiceImpl) Create(ctx context.Context, dto domain.CreatePortfolioItemDTO) (*domain.PortfolioItem, error) {
	item := domain.PortfolioItem{
		ID:          uuid.New().String(),
		Title:       dto.Title,
		Category:    dto.Category,
		ImageURL:    dto.ImageURL,
		Description: dto.Description,
		Featured:    dto.Featured,
		Order:       dto.Order,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Upload загружает изображение в хранилище и создает работу с его URL.
func (s *PortfolioServiceImpl) Upload(ctx context.Context, dto domain.CreatePortfolioItemDTO, image []byte, filename string) (*domain.PortfolioItem, error) {
	url, err := s.fileStorage.UploadFile(ctx, image, filename, "portfolio")
	if err != nil {
		return nil, err
	}

	dto.ImageURL = url
	item, err := s.Create(ctx, dto)
	if err != nil {
		if delErr := s.fileStorage.DeleteFile(ctx, url); delErr != nil {
			s.logger.Warn("ошибка удаления файла после сбоя создания работы", zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("загружена работа портфолио", zap.String("item_id", item.ID))

	return item, nil
}

func (s *PortfolioServiceImpl) Update(ctx context.Context, id string, dto domain.UpdatePortfolioItemDTO) (*domain.PortfolioItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		item.Title = *dto.Title
	}
	if dto.Category != nil {
		item.Category = *dto.Category
	}
	if dto.ImageURL != nil {
		item.ImageURL = *dto.ImageURL
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.Featured != nil {
		item.Featured = *dto.Featured
	}
	if dto.Order != nil {
		item.Order = *dto.Order
	}

	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *PortfolioServiceImpl) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if item.ImageURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, item.ImageURL); err != nil {
			s.logger.Warn("ошибка удаления изображения работы", zap.Error(err))
		}
	}

	return nil
}

func (s *PortfolioServiceImpl) List(ctx context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error) {
	return s.repo.List(ctx, filter)
}
