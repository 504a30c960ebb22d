package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/pkg/validator"
)

var (
	ErrSlotUnavailable = errors.New("выбранное время недоступно для бронирования")
	ErrTokenExpired    = errors.New("ссылка на бронирование недействительна или устарела")
)

const manualTokenTTL = 7 * 24 * time.Hour

type BookingServiceImpl struct {
	repo         repository.BookingRepository
	availability AvailabilityService
	calendar     CalendarService
	notifier     Notifier
	studio       config.StudioConfig
	logger       *zap.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	availability AvailabilityService,
	calendar CalendarService,
	notifier Notifier,
	studio config.StudioConfig,
	logger *zap.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		repo:         repo,
		availability: availability,
		calendar:     calendar,
		notifier:     notifier,
		studio:       studio,
		logger:       logger,
	}
}

func (s *BookingServiceImpl) ensureSlotAvailable(ctx context.Context, date, slotTime, sessionType string) (*domain.AvailableTimesResult, error) {
	result, err := s.availability.AvailableTimes(ctx, date, sessionType)
	if err != nil {
		return nil, err
	}

	for _, t := range result.AvailableTimes {
		if t == slotTime {
			return result, nil
		}
	}

	return nil, ErrSlotUnavailable
}

func (s *BookingServiceImpl) Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error) {
	availability, err := s.ensureSlotAvailable(ctx, dto.BookingDate, dto.BookingTime, dto.SessionType)
	if err != nil {
		return nil, err
	}

	addonsTotal := 0.0
	for _, addon := range dto.SelectedAddons {
		addonsTotal += addon.Price
	}

	surcharge := 0.0
	if availability.IsWeekend {
		surcharge = float64(availability.WeekendSurcharge)
	}

	now := time.Now()
	booking := domain.Booking{
		ID:                     uuid.New().String(),
		ClientName:             validator.SanitizeString(dto.ClientName),
		ClientEmail:            dto.ClientEmail,
		ClientPhone:            validator.FormatPhone(dto.ClientPhone),
		SessionType:            dto.SessionType,
		PackageID:              dto.PackageID,
		PackageName:            dto.PackageName,
		PackagePrice:           dto.PackagePrice,
		BookingDate:            dto.BookingDate,
		BookingTime:            dto.BookingTime,
		Notes:                  validator.SanitizeString(dto.Notes),
		SelectedAddons:         dto.SelectedAddons,
		AddonsTotal:            addonsTotal,
		TotalPrice:             dto.PackagePrice + addonsTotal + surcharge,
		WeekendSurcharge:       surcharge,
		Status:                 domain.BookingStatusPending,
		PaymentStatus:          "unpaid",
		PaymentMethod:          dto.PaymentMethod,
		ContractSigned:         dto.ContractSigned,
		ContractData:           dto.ContractData,
		QuestionnaireResponses: dto.QuestionnaireResponses,
		ManageToken:            uuid.New().String(),
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("создана бронь",
		zap.String("booking_id", booking.ID),
		zap.String("date", booking.BookingDate),
		zap.String("time", booking.BookingTime),
	)

	go s.calendar.SyncBookingCreated(context.Background(), &booking)
	s.notifier.BookingCreated(ctx, &booking)

	return &booking, nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateBookingDTO) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rescheduled := false
	if dto.BookingDate != nil && *dto.BookingDate != booking.BookingDate {
		rescheduled = true
	}
	if dto.BookingTime != nil && *dto.BookingTime != booking.BookingTime {
		rescheduled = true
	}

	if dto.ClientName != nil {
		booking.ClientName = validator.SanitizeString(*dto.ClientName)
	}
	if dto.ClientEmail != nil {
		booking.ClientEmail = *dto.ClientEmail
	}
	if dto.ClientPhone != nil {
		booking.ClientPhone = validator.FormatPhone(*dto.ClientPhone)
	}
	if dto.SessionType != nil {
		booking.SessionType = *dto.SessionType
	}
	if dto.PackageID != nil {
		booking.PackageID = *dto.PackageID
	}
	if dto.PackageName != nil {
		booking.PackageName = *dto.PackageName
	}
	if dto.PackagePrice != nil {
		booking.PackagePrice = *dto.PackagePrice
	}
	if dto.BookingDate != nil {
		booking.BookingDate = *dto.BookingDate
	}
	if dto.BookingTime != nil {
		booking.BookingTime = *dto.BookingTime
	}
	if dto.Notes != nil {
		booking.Notes = validator.SanitizeString(*dto.Notes)
	}
	if dto.PaymentStatus != nil {
		booking.PaymentStatus = *dto.PaymentStatus
	}

	statusChanged := false
	if dto.Status != nil && *dto.Status != booking.Status {
		booking.Status = *dto.Status
		statusChanged = true
	}

	if rescheduled && booking.Status.OccupiesSlot() {
		if _, err := s.ensureSlotAvailable(ctx, booking.BookingDate, booking.BookingTime, booking.SessionType); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, *booking); err != nil {
		return nil, err
	}

	switch {
	case statusChanged && booking.Status == domain.BookingStatusCancelled:
		go s.calendar.SyncBookingCancelled(context.Background(), booking)
	case rescheduled:
		// Пересоздание события: старое удаляется, новое пишется с новым UID.
		go func(b domain.Booking) {
			ctx := context.Background()
			s.calendar.SyncBookingCancelled(ctx, &b)
			s.calendar.SyncBookingCreated(ctx, &b)
		}(*booking)
	}

	if statusChanged {
		s.notifier.BookingStatusChanged(ctx, booking)
	}

	return booking, nil
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, id string) error {
	status := domain.BookingStatusCancelled
	_, err := s.Update(ctx, id, domain.UpdateBookingDTO{Status: &status})
	return err
}

func (s *BookingServiceImpl) Delete(ctx context.Context, id string) error {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	go s.calendar.SyncBookingCancelled(context.Background(), booking)

	return nil
}

func (s *BookingServiceImpl) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// CreateManual создает бронь от имени администратора. Клиент получает
// одноразовую ссылку и сам выбирает пакет и заполняет анкету.
func (s *BookingServiceImpl) CreateManual(ctx context.Context, dto domain.ManualBookingDTO) (*domain.Booking, string, error) {
	if _, err := s.ensureSlotAvailable(ctx, dto.BookingDate, dto.BookingTime, dto.SessionType); err != nil {
		return nil, "", err
	}

	now := time.Now()
	booking := domain.Booking{
		ID:          uuid.New().String(),
		ClientName:  validator.SanitizeString(dto.ClientName),
		ClientEmail: dto.ClientEmail,
		ClientPhone: validator.FormatPhone(dto.ClientPhone),
		SessionType: dto.SessionType,
		BookingDate: dto.BookingDate,
		BookingTime: dto.BookingTime,
		Notes:       validator.SanitizeString(dto.Notes),
		Status:      domain.BookingStatusAwaitingClient,
		ManageToken: uuid.New().String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, "", err
	}

	token := domain.BookingToken{
		Token:     uuid.New().String(),
		BookingID: booking.ID,
		ExpiresAt: now.Add(manualTokenTTL),
	}
	if err := s.repo.CreateToken(ctx, token); err != nil {
		return nil, "", err
	}

	s.logger.Info("создана ручная бронь",
		zap.String("booking_id", booking.ID),
		zap.String("date", booking.BookingDate),
	)

	go s.calendar.SyncBookingCreated(context.Background(), &booking)
	s.notifier.ManualBookingLink(ctx, &booking, token.Token)

	return &booking, token.Token, nil
}

func (s *BookingServiceImpl) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	t, err := s.repo.GetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	if t.Used || time.Now().After(t.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	return s.repo.GetByID(ctx, t.BookingID)
}

func (s *BookingServiceImpl) CompleteByToken(ctx context.Context, token string, dto domain.CompleteBookingDTO) (*domain.Booking, error) {
	booking, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusAwaitingClient {
		return nil, fmt.Errorf("бронь уже завершена клиентом")
	}

	booking.PackageID = dto.PackageID
	booking.PackageName = dto.PackageName
	booking.PackagePrice = dto.PackagePrice
	booking.SelectedAddons = dto.SelectedAddons
	booking.AddonsTotal = dto.AddonsTotal
	booking.TotalPrice = dto.TotalPrice
	booking.QuestionnaireResponses = dto.QuestionnaireResponses
	if dto.ClientPhone != "" {
		booking.ClientPhone = validator.FormatPhone(dto.ClientPhone)
	}
	if dto.Notes != "" {
		booking.Notes = validator.SanitizeString(dto.Notes)
	}
	booking.Status = domain.BookingStatusPending

	if err := s.repo.Update(ctx, *booking); err != nil {
		return nil, err
	}
	if err := s.repo.MarkTokenUsed(ctx, token); err != nil {
		s.logger.Warn("ошибка при отметке токена брони", zap.Error(err))
	}

	s.notifier.BookingStatusChanged(ctx, booking)

	return booking, nil
}
