package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/caldav"
	"silwer/internal/domain"
	"silwer/internal/repository"
)

var errSyncDisabled = errors.New("синхронизация календаря не настроена")

// CalendarServiceImpl обслуживает кэш событий внешнего календаря и
// двустороннюю синхронизацию броней. Все сбои провайдера деградируют до
// пустого списка событий: внешний календарь никогда не валит доступность.
type CalendarServiceImpl struct {
	settingsRepo repository.SettingsRepository
	cacheRepo    repository.CalendarCacheRepository
	bookingRepo  repository.BookingRepository
	newClient    caldav.Factory
	cfg          config.AvailabilityConfig
	studio       config.StudioConfig
	logger       *zap.Logger

	now func() time.Time
}

func NewCalendarService(
	settingsRepo repository.SettingsRepository,
	cacheRepo repository.CalendarCacheRepository,
	bookingRepo repository.BookingRepository,
	newClient caldav.Factory,
	cfg config.AvailabilityConfig,
	studio config.StudioConfig,
	logger *zap.Logger,
) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		settingsRepo: settingsRepo,
		cacheRepo:    cacheRepo,
		bookingRepo:  bookingRepo,
		newClient:    newClient,
		cfg:          cfg,
		studio:       studio,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *CalendarServiceImpl) settings(ctx context.Context) (*domain.CalendarSettings, error) {
	settings, err := s.settingsRepo.GetCalendarSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil || !settings.SyncConfigured() {
		return nil, errSyncDisabled
	}
	return settings, nil
}

// EventsInRange возвращает события внешнего календаря за период, исключая
// созданные самой студией. Кэш обновляется синхронно при устаревании; при
// недоступности провайдера используется последний снимок, при его отсутствии
// возвращается пустой список.
func (s *CalendarServiceImpl) EventsInRange(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error) {
	if _, err := s.settings(ctx); err != nil {
		if errors.Is(err, errSyncDisabled) {
			return nil, nil
		}
		return nil, err
	}

	cache, err := s.cacheRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("ошибка чтения кэша календаря", zap.Error(err))
		cache = nil
	}

	if cache.Stale(s.now(), s.cfg.CacheTTL) {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("ошибка обновления кэша календаря", zap.Error(err))
		} else {
			cache, err = s.cacheRepo.Get(ctx)
			if err != nil {
				s.logger.Warn("ошибка чтения кэша календаря", zap.Error(err))
				cache = nil
			}
		}
	}

	if cache == nil {
		return nil, nil
	}

	var events []domain.CalendarEvent
	for _, ev := range cache.Events {
		if ev.IsStudioEvent(s.studio.EventMarker) {
			continue
		}
		if ev.End.Before(start) || ev.Start.After(end) {
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

// Refresh синхронно перечитывает события провайдера на скользящее окно
// вперед и замещает кэш целиком.
func (s *CalendarServiceImpl) Refresh(ctx context.Context) error {
	settings, err := s.settings(ctx)
	if err != nil {
		if errors.Is(err, errSyncDisabled) {
			return nil
		}
		return err
	}

	client, err := s.newClient(*settings)
	if err != nil {
		return err
	}

	now := s.now()
	rangeStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rangeEnd := rangeStart.AddDate(0, 0, s.cfg.SyncWindowDays)

	events, err := client.FetchEvents(ctx, rangeStart, rangeEnd)
	if err != nil {
		return fmt.Errorf("ошибка получения событий календаря: %w", err)
	}

	cache := domain.CalendarCache{
		ID:          "default",
		Events:      events,
		RefreshedAt: now,
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
	}
	if err := s.cacheRepo.Upsert(ctx, cache); err != nil {
		return err
	}

	s.logger.Info("кэш календаря обновлен",
		zap.Int("events", len(events)),
		zap.Time("range_start", rangeStart),
		zap.Time("range_end", rangeEnd),
	)

	return nil
}

func (s *CalendarServiceImpl) ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error) {
	settings, err := s.settings(ctx)
	if err != nil {
		if errors.Is(err, errSyncDisabled) {
			return nil, nil
		}
		return nil, err
	}

	client, err := s.newClient(*settings)
	if err != nil {
		return nil, err
	}

	return client.ListCalendars(ctx)
}

// bookingCalendarPath разрешает настройку "календарь броней" в путь
// коллекции: администратор может указать как путь, так и отображаемое имя
// календаря у провайдера.
func (s *CalendarServiceImpl) bookingCalendarPath(ctx context.Context, client caldav.Client, setting string) string {
	if strings.HasPrefix(setting, "/") {
		return setting
	}

	calendars, err := client.ListCalendars(ctx)
	if err != nil {
		s.logger.Warn("ошибка получения списка календарей", zap.Error(err))
		return setting
	}
	for _, cal := range calendars {
		if cal.Path == setting || strings.EqualFold(cal.Name, setting) {
			return cal.Path
		}
	}

	return setting
}

// SyncBookingCreated записывает бронь во внешний календарь. Ошибки только
// логируются: бронь уже создана и не должна зависеть от провайдера.
func (s *CalendarServiceImpl) SyncBookingCreated(ctx context.Context, booking *domain.Booking) {
	settings, err := s.settings(ctx)
	if err != nil {
		return
	}
	if settings.BookingCalendar == "" {
		return
	}

	client, err := s.newClient(*settings)
	if err != nil {
		s.logger.Warn("ошибка создания CalDAV клиента", zap.Error(err))
		return
	}

	day, err := time.ParseInLocation(domain.DateLayout, booking.BookingDate, time.Local)
	if err != nil {
		s.logger.Warn("некорректная дата брони",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
		return
	}
	slot, ok := domain.ParseTimeSlot(booking.BookingTime)
	if !ok {
		s.logger.Warn("нераспознанное время брони",
			zap.String("booking_id", booking.ID),
			zap.String("time", booking.BookingTime),
		)
		return
	}
	start := day.Add(time.Duration(slot.Minutes()) * time.Minute)

	event := caldav.BookingEvent{
		Summary:     fmt.Sprintf("\U0001F4F8 %s - %s", booking.SessionType, booking.ClientName),
		Description: fmt.Sprintf("Пакет: %s\nКлиент: %s\nТелефон: %s", booking.PackageName, booking.ClientName, booking.ClientPhone),
		Location:    s.studio.Location,
		Start:       start,
		End:         start.Add(s.cfg.SessionDuration),
	}

	uid, err := client.PutBookingEvent(ctx, s.bookingCalendarPath(ctx, client, settings.BookingCalendar), event)
	if err != nil {
		s.logger.Warn("ошибка записи брони в календарь",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
		return
	}

	if err := s.bookingRepo.SetCalendarEventUID(ctx, booking.ID, uid); err != nil {
		s.logger.Warn("ошибка сохранения UID события календаря",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}
}

// SyncBookingCancelled удаляет событие отмененной брони из календаря.
func (s *CalendarServiceImpl) SyncBookingCancelled(ctx context.Context, booking *domain.Booking) {
	if booking.CalendarEventUID == "" {
		return
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return
	}
	if settings.BookingCalendar == "" {
		return
	}

	client, err := s.newClient(*settings)
	if err != nil {
		s.logger.Warn("ошибка создания CalDAV клиента", zap.Error(err))
		return
	}

	if err := client.DeleteEvent(ctx, s.bookingCalendarPath(ctx, client, settings.BookingCalendar), booking.CalendarEventUID); err != nil {
		s.logger.Warn("ошибка удаления события брони из календаря",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
		return
	}

	if err := s.bookingRepo.SetCalendarEventUID(ctx, booking.ID, ""); err != nil {
		s.logger.Warn("ошибка очистки UID события календаря",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}
}
