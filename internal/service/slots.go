package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/pkg/validator"
)

var errInvalidSlot = errors.New("некорректные дата или время слота")

type SlotServiceImpl struct {
	repo   repository.SlotRepository
	logger *zap.Logger
}

func NewSlotService(repo repository.SlotRepository, logger *zap.Logger) *SlotServiceImpl {
	return &SlotServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func validateSlot(date, slotTime string) error {
	if !validator.ValidateDate(date) {
		return errInvalidSlot
	}
	if _, ok := domain.ParseTimeSlot(slotTime); !ok {
		return errInvalidSlot
	}
	return nil
}

func (s *SlotServiceImpl) CreateBlocked(ctx context.Context, dto domain.CreateBlockedSlotDTO) (*domain.BlockedSlot, error) {
	if err := validateSlot(dto.Date, dto.Time); err != nil {
		return nil, err
	}

	slot := domain.BlockedSlot{
		ID:        uuid.New().String(),
		Date:      dto.Date,
		Time:      dto.Time,
		Reason:    validator.SanitizeString(dto.Reason),
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateBlocked(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("слот заблокирован", zap.String("date", slot.Date), zap.String("time", slot.Time))

	return &slot, nil
}

func (s *SlotServiceImpl) DeleteBlocked(ctx context.Context, id string) error {
	return s.repo.DeleteBlocked(ctx, id)
}

func (s *SlotServiceImpl) ListBlocked(ctx context.Context, startDate, endDate string) ([]domain.BlockedSlot, error) {
	return s.repo.BlockedByDateRange(ctx, startDate, endDate)
}

// CreateCustom добавляет разовый слот. Повторная пара (дата, время)
// отклоняется конфликтом.
func (s *SlotServiceImpl) CreateCustom(ctx context.Context, dto domain.CreateCustomSlotDTO) (*domain.CustomSlot, error) {
	if err := validateSlot(dto.Date, dto.Time); err != nil {
		return nil, err
	}

	slot := domain.CustomSlot{
		ID:          uuid.New().String(),
		Date:        dto.Date,
		Time:        dto.Time,
		SessionType: dto.SessionType,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateCustom(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("добавлен разовый слот", zap.String("date", slot.Date), zap.String("time", slot.Time))

	return &slot, nil
}

func (s *SlotServiceImpl) DeleteCustom(ctx context.Context, id string) error {
	return s.repo.DeleteCustom(ctx, id)
}

func (s *SlotServiceImpl) ListCustom(ctx context.Context, startDate, endDate string) ([]domain.CustomSlot, error) {
	return s.repo.CustomByDateRange(ctx, startDate, endDate)
}
