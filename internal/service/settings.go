package service

import (
	"context"

	"go.uber.org/zap"

	"silwer/internal/domain"
	"silwer/internal/repository"
)

type SettingsServiceImpl struct {
	repo     repository.SettingsRepository
	calendar CalendarService
	logger   *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, calendar CalendarService, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:     repo,
		calendar: calendar,
		logger:   logger,
	}
}

func (s *SettingsServiceImpl) GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	settings, err := s.repo.GetBookingSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := domain.DefaultBookingSettings()
		return &defaults, nil
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdateBookingSettings(ctx context.Context, dto domain.UpdateBookingSettingsDTO) (*domain.BookingSettings, error) {
	settings, err := s.GetBookingSettings(ctx)
	if err != nil {
		return nil, err
	}

	if dto.TimeSlotSchedule != nil {
		settings.TimeSlotSchedule = *dto.TimeSlotSchedule
	}
	if dto.BlockedDates != nil {
		settings.BlockedDates = *dto.BlockedDates
	}
	if dto.MaxBookingsPerSlot != nil {
		settings.MaxBookingsPerSlot = *dto.MaxBookingsPerSlot
	}
	if dto.AdvanceBookingDays != nil {
		settings.AdvanceBookingDays = *dto.AdvanceBookingDays
	}
	if dto.MinAdvanceHours != nil {
		settings.MinAdvanceHours = *dto.MinAdvanceHours
	}
	if dto.WeekendSurcharge != nil {
		settings.WeekendSurcharge = *dto.WeekendSurcharge
	}

	if err := s.repo.UpsertBookingSettings(ctx, *settings); err != nil {
		return nil, err
	}

	s.logger.Info("обновлены настройки бронирования")

	return settings, nil
}

func (s *SettingsServiceImpl) GetCalendarSettings(ctx context.Context) (*domain.CalendarSettings, error) {
	settings, err := s.repo.GetCalendarSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &domain.CalendarSettings{ID: "default"}, nil
	}
	return settings, nil
}

// UpdateCalendarSettings сохраняет учетные данные провайдера и сразу
// прогревает кэш событий, чтобы администратор увидел результат подключения.
func (s *SettingsServiceImpl) UpdateCalendarSettings(ctx context.Context, dto domain.UpdateCalendarSettingsDTO) (*domain.CalendarSettings, error) {
	settings, err := s.GetCalendarSettings(ctx)
	if err != nil {
		return nil, err
	}

	if dto.CalDAVURL != nil {
		settings.CalDAVURL = *dto.CalDAVURL
	}
	if dto.CalDAVUser != nil {
		settings.CalDAVUser = *dto.CalDAVUser
	}
	if dto.CalDAVPassword != nil {
		settings.CalDAVPassword = *dto.CalDAVPassword
	}
	if dto.SyncEnabled != nil {
		settings.SyncEnabled = *dto.SyncEnabled
	}
	if dto.BookingCalendar != nil {
		settings.BookingCalendar = *dto.BookingCalendar
	}

	if err := s.repo.UpsertCalendarSettings(ctx, *settings); err != nil {
		return nil, err
	}

	if settings.SyncConfigured() {
		if err := s.calendar.Refresh(ctx); err != nil {
			s.logger.Warn("ошибка обновления кэша после смены настроек календаря", zap.Error(err))
		}
	}

	return settings, nil
}

func (s *SettingsServiceImpl) GetPaymentSettings(ctx context.Context) (*domain.PaymentSettings, error) {
	settings, err := s.repo.GetPaymentSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := domain.DefaultPaymentSettings()
		return &defaults, nil
	}
	return settings, nil
}

func (s *SettingsServiceImpl) UpdatePaymentSettings(ctx context.Context, dto domain.UpdatePaymentSettingsDTO) (*domain.PaymentSettings, error) {
	settings, err := s.GetPaymentSettings(ctx)
	if err != nil {
		return nil, err
	}

	if dto.BankName != nil {
		settings.BankName = *dto.BankName
	}
	if dto.AccountHolder != nil {
		settings.AccountHolder = *dto.AccountHolder
	}
	if dto.AccountNumber != nil {
		settings.AccountNumber = *dto.AccountNumber
	}
	if dto.BranchCode != nil {
		settings.BranchCode = *dto.BranchCode
	}
	if dto.AccountType != nil {
		settings.AccountType = *dto.AccountType
	}
	if dto.ReferenceFormat != nil {
		settings.ReferenceFormat = *dto.ReferenceFormat
	}
	if dto.PayFastEnabled != nil {
		settings.PayFastEnabled = *dto.PayFastEnabled
	}
	if dto.PayFlexEnabled != nil {
		settings.PayFlexEnabled = *dto.PayFlexEnabled
	}

	if err := s.repo.UpsertPaymentSettings(ctx, *settings); err != nil {
		return nil, err
	}

	s.logger.Info("обновлены настройки оплаты")

	return settings, nil
}
