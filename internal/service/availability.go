package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/domain"
	"silwer/internal/repository"
)

// AvailabilityServiceImpl сводит регулярное расписание, разовые слоты,
// брони и события внешнего календаря в итоговую доступность.
type AvailabilityServiceImpl struct {
	settingsRepo repository.SettingsRepository
	bookingRepo  repository.BookingRepository
	slotRepo     repository.SlotRepository
	calendar     CalendarService
	cfg          config.AvailabilityConfig
	logger       *zap.Logger
}

func NewAvailabilityService(
	settingsRepo repository.SettingsRepository,
	bookingRepo repository.BookingRepository,
	slotRepo repository.SlotRepository,
	calendar CalendarService,
	cfg config.AvailabilityConfig,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		settingsRepo: settingsRepo,
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		calendar:     calendar,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *AvailabilityServiceImpl) bookingSettings(ctx context.Context) (domain.BookingSettings, error) {
	settings, err := s.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		return domain.BookingSettings{}, err
	}
	if settings == nil {
		return domain.DefaultBookingSettings(), nil
	}
	return *settings, nil
}

// AvailableTimes возвращает свободное время на дату. Слот свободен, если он
// есть в расписании или добавлен разово, не занят бронью, не заблокирован
// администратором и не пересекается с событием внешнего календаря.
func (s *AvailabilityServiceImpl) AvailableTimes(ctx context.Context, date, sessionType string) (*domain.AvailableTimesResult, error) {
	result := &domain.AvailableTimesResult{
		Date:           date,
		AvailableTimes: []string{},
		SessionType:    sessionType,
	}

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		result.Message = "Некорректный формат даты"
		return result, nil
	}

	settings, err := s.bookingSettings(ctx)
	if err != nil {
		return nil, err
	}

	dayID := domain.DayID(day)
	result.IsWeekend = domain.IsWeekendDay(dayID)
	if result.IsWeekend {
		result.WeekendSurcharge = settings.WeekendSurcharge
	}

	if settings.DateBlocked(date) {
		result.Message = "Дата заблокирована для бронирования"
		return result, nil
	}

	candidates := settings.SlotsForDay(sessionType, strconv.Itoa(dayID))

	customSlots, err := s.slotRepo.CustomByDateRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	// разовый слот попадает в кандидаты независимо от типа съемки;
	// его session_type чисто информационный
	for _, slot := range customSlots {
		candidates = append(candidates, slot.Time)
	}

	seen := make(map[string]bool)
	unique := candidates[:0]
	for _, t := range candidates {
		if !seen[t] {
			seen[t] = true
			unique = append(unique, t)
		}
	}
	candidates = unique

	bookings, err := s.bookingRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool)
	for _, b := range bookings {
		booked[b.BookingTime] = true
	}

	blockedSlots, err := s.slotRepo.BlockedByDateRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	blocked := make(map[string]bool)
	for _, slot := range blockedSlots {
		blocked[slot.Time] = true
	}

	busy, calendarBlocked := s.dayBusyIntervals(ctx, day)
	result.CalendarBlocked = calendarBlocked
	if calendarBlocked {
		result.Message = "День занят личным событием в календаре"
		return result, nil
	}

	var available []string
	for _, raw := range candidates {
		slot, ok := domain.ParseTimeSlot(raw)
		if !ok {
			s.logger.Warn("нераспознанный формат времени слота", zap.String("slot", raw))
			continue
		}
		if booked[raw] || blocked[raw] {
			continue
		}
		if overlapsAny(busy, slot, s.cfg.SessionDuration) {
			result.CalendarBlocked = true
			continue
		}
		available = append(available, raw)
	}
	sort.Strings(available)
	if available != nil {
		result.AvailableTimes = available
	}

	if len(result.AvailableTimes) == 0 && result.Message == "" {
		result.Message = "Нет доступного времени на выбранную дату"
	}

	return result, nil
}

// dayBusyIntervals проецирует события внешнего календаря на дату. Второй
// результат сигнализирует, что день закрыт целиком событием "на весь день".
func (s *AvailabilityServiceImpl) dayBusyIntervals(ctx context.Context, day time.Time) ([]domain.BusyInterval, bool) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.calendar.EventsInRange(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Warn("ошибка получения событий календаря", zap.Error(err))
		return nil, false
	}

	var busy []domain.BusyInterval
	fullDay := false
	for _, ev := range events {
		for _, interval := range ev.DayBusyIntervals(day) {
			if interval.StartMin == 0 && interval.EndMin >= 24*60 {
				fullDay = true
			}
			busy = append(busy, interval)
		}
	}

	return busy, fullDay
}

func overlapsAny(busy []domain.BusyInterval, slot domain.TimeOfDay, duration time.Duration) bool {
	for _, interval := range busy {
		if interval.Overlaps(slot, duration) {
			return true
		}
	}
	return false
}

// CalendarView собирает единый оверлей событий за период: брони, блокировки,
// личные события и оставшиеся открытые слоты. Каждая пара (дата, время)
// попадает в оверлей ровно один раз.
func (s *AvailabilityServiceImpl) CalendarView(ctx context.Context, startDate, endDate string) (*domain.CalendarViewResult, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("некорректный формат даты начала: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("некорректный формат даты окончания: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("дата окончания раньше даты начала")
	}

	settings, err := s.bookingSettings(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	blockedSlots, err := s.slotRepo.BlockedByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	customSlots, err := s.slotRepo.CustomByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	events := []domain.CalendarViewEvent{}
	used := make(map[domain.SlotKey]bool)

	for _, b := range bookings {
		used[domain.SlotKey{Date: b.BookingDate, Time: b.BookingTime}] = true
		events = append(events, domain.CalendarViewEvent{
			ID:              "booking-" + b.ID,
			Title:           fmt.Sprintf("%s - %s", b.ClientName, b.SessionType),
			Start:           slotStartISO(b.BookingDate, b.BookingTime),
			End:             slotEndISO(b.BookingDate, b.BookingTime, s.cfg.SessionDuration),
			BackgroundColor: b.Status.StatusColor(),
			BorderColor:     b.Status.StatusColor(),
			ExtendedProps: map[string]interface{}{
				"type":         "booking",
				"status":       string(b.Status),
				"session_type": b.SessionType,
				"client_name":  b.ClientName,
			},
		})
	}

	for _, slot := range blockedSlots {
		used[slot.Key()] = true
		title := "Заблокировано"
		if slot.Reason != "" {
			title = title + ": " + slot.Reason
		}
		events = append(events, domain.CalendarViewEvent{
			ID:              "blocked-" + slot.ID,
			Title:           title,
			Start:           slotStartISO(slot.Date, slot.Time),
			End:             slotEndISO(slot.Date, slot.Time, s.cfg.SessionDuration),
			BackgroundColor: "#EF4444",
			BorderColor:     "#EF4444",
			ExtendedProps: map[string]interface{}{
				"type":   "blocked",
				"reason": slot.Reason,
			},
		})
	}

	rangeEnd := end.AddDate(0, 0, 1)
	personal, err := s.calendar.EventsInRange(ctx, start, rangeEnd)
	if err != nil {
		s.logger.Warn("ошибка получения событий календаря", zap.Error(err))
		personal = nil
	}
	for i, ev := range personal {
		title := ev.Summary
		if title == "" {
			title = "Занято"
		}
		viewEvent := domain.CalendarViewEvent{
			ID:              fmt.Sprintf("personal-%d", i),
			Title:           title,
			Start:           ev.Start.Format("2006-01-02T15:04:05"),
			End:             ev.End.Format("2006-01-02T15:04:05"),
			BackgroundColor: "#6B7280",
			BorderColor:     "#6B7280",
			ExtendedProps: map[string]interface{}{
				"type":     "personal",
				"calendar": ev.CalendarName,
			},
		}
		if ev.IsAllDay() {
			viewEvent.Start = ev.Start.Format(domain.DateLayout)
			viewEvent.End = ev.End.Format(domain.DateLayout)
			viewEvent.Display = "background"
		}
		events = append(events, viewEvent)
	}

	slotsByDay := settings.AllSlotsByDay()
	customByDate := make(map[string][]string)
	for _, slot := range customSlots {
		customByDate[slot.Date] = append(customByDate[slot.Date], slot.Time)
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateLayout)
		dayKey := strconv.Itoa(domain.DayID(day))

		// открытый слот проходит те же проверки пересечения с личными
		// событиями, что и одиночная выдача доступности
		var busy []domain.BusyInterval
		for _, ev := range personal {
			busy = append(busy, ev.DayBusyIntervals(day)...)
		}

		openTimes := make(map[string]bool)
		for slot := range slotsByDay[dayKey] {
			openTimes[slot] = true
		}
		for _, slot := range customByDate[date] {
			openTimes[slot] = true
		}

		times := make([]string, 0, len(openTimes))
		for slot := range openTimes {
			times = append(times, slot)
		}
		sort.Strings(times)

		for _, slot := range times {
			if used[domain.SlotKey{Date: date, Time: slot}] {
				continue
			}
			parsed, ok := domain.ParseTimeSlot(slot)
			if !ok {
				continue
			}
			if overlapsAny(busy, parsed, s.cfg.SessionDuration) {
				continue
			}
			events = append(events, domain.CalendarViewEvent{
				ID:              fmt.Sprintf("open-%s-%s", date, slot),
				Title:           "Свободно",
				Start:           slotStartISO(date, slot),
				End:             slotEndISO(date, slot, s.cfg.SessionDuration),
				BackgroundColor: "#10B981",
				BorderColor:     "#10B981",
				ExtendedProps: map[string]interface{}{
					"type": "open",
					"time": slot,
				},
			})
		}
	}

	return &domain.CalendarViewResult{Events: events}, nil
}

func slotStartISO(date, slot string) string {
	t, ok := domain.ParseTimeSlot(slot)
	if !ok {
		return date + "T00:00:00"
	}
	return fmt.Sprintf("%sT%s:00", date, t.String())
}

func slotEndISO(date, slot string, duration time.Duration) string {
	t, ok := domain.ParseTimeSlot(slot)
	if !ok {
		return date + "T00:00:00"
	}

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date + "T00:00:00"
	}

	end := day.Add(time.Duration(t.Minutes())*time.Minute + duration)
	return end.Format("2006-01-02T15:04:05")
}
