package domain

import (
	"strings"
	"time"
)

// CalendarSettings — учетные данные внешнего CalDAV-провайдера.
// Отсутствие любого обязательного поля означает "синхронизация выключена".
type CalendarSettings struct {
	ID              string `json:"id"`
	CalDAVURL       string `json:"caldav_url"`
	CalDAVUser      string `json:"caldav_user"`
	CalDAVPassword  string `json:"caldav_password"`
	SyncEnabled     bool   `json:"sync_enabled"`
	BookingCalendar string `json:"booking_calendar"`
}

// DefaultCalDAVURL — сервер по умолчанию, когда адрес провайдера не задан.
const DefaultCalDAVURL = "https://caldav.icloud.com"

func (s CalendarSettings) SyncConfigured() bool {
	return s.SyncEnabled && s.CalDAVUser != "" && s.CalDAVPassword != ""
}

// ServerURL возвращает адрес CalDAV-сервера, подставляя провайдера по
// умолчанию при пустой настройке.
func (s CalendarSettings) ServerURL() string {
	if s.CalDAVURL == "" {
		return DefaultCalDAVURL
	}
	return s.CalDAVURL
}

type UpdateCalendarSettingsDTO struct {
	CalDAVURL       *string `json:"caldav_url,omitempty"`
	CalDAVUser      *string `json:"caldav_user,omitempty"`
	CalDAVPassword  *string `json:"caldav_password,omitempty"`
	SyncEnabled     *bool   `json:"sync_enabled,omitempty"`
	BookingCalendar *string `json:"booking_calendar,omitempty"`
}

// CalendarEvent — событие внешнего календаря. Не хранится как отдельная
// сущность: живет только внутри кэша событий.
type CalendarEvent struct {
	Summary      string    `json:"summary"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CalendarName string    `json:"calendar_name"`
}

// IsStudioEvent распознает событие, созданное самой студией при
// синхронизации брони: камера-эмодзи или подстрока с именем студии.
func (e CalendarEvent) IsStudioEvent(marker string) bool {
	if strings.Contains(e.Summary, "\U0001F4F8") {
		return true
	}
	return marker != "" && strings.Contains(strings.ToLower(e.Summary), strings.ToLower(marker))
}

// IsAllDay — событие "на весь день" приходит с нулевым временем начала и
// конца; оно блокирует каждый покрытый день целиком.
func (e CalendarEvent) IsAllDay() bool {
	return e.Start.Hour() == 0 && e.Start.Minute() == 0 &&
		e.End.Hour() == 0 && e.End.Minute() == 0
}

// CalendarCache — единственная кэшированная строка с событиями внешнего
// календаря на скользящее окно вперед.
type CalendarCache struct {
	ID          string          `json:"id"`
	Events      []CalendarEvent `json:"events"`
	RefreshedAt time.Time       `json:"refreshed_at"`
	RangeStart  time.Time       `json:"range_start"`
	RangeEnd    time.Time       `json:"range_end"`
}

// Stale — чистый предикат устаревания кэша: кэш отсутствует или старше TTL.
func (c *CalendarCache) Stale(now time.Time, ttl time.Duration) bool {
	if c == nil || c.RefreshedAt.IsZero() {
		return true
	}
	return now.Sub(c.RefreshedAt) > ttl
}

// BusyInterval — занятый промежуток внутри одного дня, в минутах от полуночи.
type BusyInterval struct {
	StartMin int
	EndMin   int
}

// Overlaps проверяет пересечение слота с занятым промежутком в полуоткрытой
// семантике: касание границ пересечением не считается.
func (b BusyInterval) Overlaps(slot TimeOfDay, duration time.Duration) bool {
	slotStart := slot.Minutes()
	slotEnd := slotStart + int(duration.Minutes())
	return !(slotEnd <= b.StartMin || slotStart >= b.EndMin)
}

// DayBusyIntervals проецирует событие на конкретную дату. Многодневное
// событие блокирует день начала от времени начала до конца дня, день
// окончания от начала дня до времени окончания, а все дни строго между —
// целиком. Событие "на весь день" блокирует каждый покрытый день целиком,
// причем день окончания по iCal-соглашению эксклюзивен.
func (e CalendarEvent) DayBusyIntervals(date time.Time) []BusyInterval {
	day := date.Truncate(24 * time.Hour)
	startDay := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(e.End.Year(), e.End.Month(), e.End.Day(), 0, 0, 0, 0, time.UTC)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if e.IsAllDay() {
		if !day.Before(startDay) && day.Before(endDay) {
			return []BusyInterval{{StartMin: 0, EndMin: 24 * 60}}
		}
		return nil
	}

	switch {
	case day.Equal(startDay) && day.Equal(endDay):
		return []BusyInterval{{
			StartMin: e.Start.Hour()*60 + e.Start.Minute(),
			EndMin:   e.End.Hour()*60 + e.End.Minute(),
		}}
	case day.Equal(startDay):
		return []BusyInterval{{
			StartMin: e.Start.Hour()*60 + e.Start.Minute(),
			EndMin:   23*60 + 59,
		}}
	case day.Equal(endDay):
		return []BusyInterval{{
			StartMin: 0,
			EndMin:   e.End.Hour()*60 + e.End.Minute(),
		}}
	case day.After(startDay) && day.Before(endDay):
		return []BusyInterval{{StartMin: 0, EndMin: 23*60 + 59}}
	}

	return nil
}

// CalendarInfo — имя и путь календаря у провайдера.
type CalendarInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// CalendarViewEvent — элемент единого оверлея календаря администратора
// (формат FullCalendar).
type CalendarViewEvent struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Start           string                 `json:"start"`
	End             string                 `json:"end"`
	BackgroundColor string                 `json:"backgroundColor"`
	BorderColor     string                 `json:"borderColor"`
	Display         string                 `json:"display,omitempty"`
	ExtendedProps   map[string]interface{} `json:"extendedProps"`
}
