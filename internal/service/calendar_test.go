package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/caldav"
	"silwer/internal/domain"
)

type fakeCacheRepo struct {
	cache *domain.CalendarCache
}

func (f *fakeCacheRepo) Get(ctx context.Context) (*domain.CalendarCache, error) {
	return f.cache, nil
}

func (f *fakeCacheRepo) Upsert(ctx context.Context, cache domain.CalendarCache) error {
	f.cache = &cache
	return nil
}

type fakeCalDAVClient struct {
	events     []domain.CalendarEvent
	fetchErr   error
	fetchCalls int
	calendars  []domain.CalendarInfo
	putUID     string
	putPath    string
	putEvent   caldav.BookingEvent
	deleted    []string
}

func (f *fakeCalDAVClient) ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error) {
	if f.calendars != nil {
		return f.calendars, nil
	}
	return []domain.CalendarInfo{{Name: "Personal", Path: "/calendars/personal/"}}, nil
}

func (f *fakeCalDAVClient) FetchEvents(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.events, nil
}

func (f *fakeCalDAVClient) PutBookingEvent(ctx context.Context, calendarPath string, event caldav.BookingEvent) (string, error) {
	f.putUID = "uid-123"
	f.putPath = calendarPath
	f.putEvent = event
	return f.putUID, nil
}

func (f *fakeCalDAVClient) DeleteEvent(ctx context.Context, calendarPath, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

func configuredCalendarSettings() *domain.CalendarSettings {
	return &domain.CalendarSettings{
		ID:              "default",
		CalDAVURL:       "https://caldav.example.com",
		CalDAVUser:      "studio",
		CalDAVPassword:  "secret",
		SyncEnabled:     true,
		BookingCalendar: "/calendars/bookings/",
	}
}

func newTestCalendar(settings *fakeSettingsRepo, cache *fakeCacheRepo, bookings *fakeBookingRepo, client *fakeCalDAVClient, now time.Time) *CalendarServiceImpl {
	factory := func(s domain.CalendarSettings) (caldav.Client, error) {
		return client, nil
	}
	svc := NewCalendarService(
		settings,
		cache,
		bookings,
		factory,
		config.AvailabilityConfig{
			SessionDuration: 2 * time.Hour,
			CacheTTL:        15 * time.Minute,
			SyncWindowDays:  120,
		},
		config.StudioConfig{Name: "Silwer Lining", EventMarker: "silwerlining"},
		zap.NewNop(),
	)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEventsInRangeSyncDisabled(t *testing.T) {
	client := &fakeCalDAVClient{}
	svc := newTestCalendar(&fakeSettingsRepo{}, &fakeCacheRepo{}, &fakeBookingRepo{}, client, time.Now())

	events, err := svc.EventsInRange(context.Background(), time.Now(), time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if events != nil {
		t.Fatalf("без настроек синхронизации событий быть не должно, got %v", events)
	}
	if client.fetchCalls != 0 {
		t.Fatal("провайдер не должен опрашиваться при выключенной синхронизации")
	}
}

func TestEventsInRangeUsesFreshCache(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{}
	cache := &fakeCacheRepo{cache: &domain.CalendarCache{
		ID:          "default",
		RefreshedAt: now.Add(-5 * time.Minute),
		Events: []domain.CalendarEvent{
			{
				Summary: "Врач",
				Start:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
			},
		},
	}}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, cache, &fakeBookingRepo{}, client, now)

	events, err := svc.EventsInRange(context.Background(),
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("событий = %d, want 1", len(events))
	}
	if client.fetchCalls != 0 {
		t.Fatalf("свежий кэш не должен вызывать провайдера, calls=%d", client.fetchCalls)
	}
}

func TestEventsInRangeRefreshesStaleCache(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{events: []domain.CalendarEvent{
		{
			Summary: "Новое событие",
			Start:   time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC),
		},
	}}
	cache := &fakeCacheRepo{cache: &domain.CalendarCache{
		ID:          "default",
		RefreshedAt: now.Add(-time.Hour),
	}}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, cache, &fakeBookingRepo{}, client, now)

	events, err := svc.EventsInRange(context.Background(),
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if client.fetchCalls != 1 {
		t.Fatalf("устаревший кэш должен обновиться ровно один раз, calls=%d", client.fetchCalls)
	}
	if len(events) != 1 || events[0].Summary != "Новое событие" {
		t.Fatalf("ожидались события из обновленного кэша, got %v", events)
	}
}

func TestEventsInRangeKeepsStaleOnProviderFailure(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{fetchErr: errors.New("провайдер недоступен")}
	cache := &fakeCacheRepo{cache: &domain.CalendarCache{
		ID:          "default",
		RefreshedAt: now.Add(-time.Hour),
		Events: []domain.CalendarEvent{
			{
				Summary: "Старое событие",
				Start:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
			},
		},
	}}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, cache, &fakeBookingRepo{}, client, now)

	events, err := svc.EventsInRange(context.Background(),
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("сбой провайдера не должен быть ошибкой: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Старое событие" {
		t.Fatalf("при сбое провайдера используется последний снимок, got %v", events)
	}
}

func TestEventsInRangeFiltersStudioEvents(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	cache := &fakeCacheRepo{cache: &domain.CalendarCache{
		ID:          "default",
		RefreshedAt: now,
		Events: []domain.CalendarEvent{
			{
				Summary: "\U0001F4F8 Maternity - Jane",
				Start:   time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
			},
			{
				Summary: "Личная встреча",
				Start:   time.Date(2026, 3, 16, 13, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
			},
		},
	}}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, cache, &fakeBookingRepo{}, &fakeCalDAVClient{}, now)

	events, err := svc.EventsInRange(context.Background(),
		time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Личная встреча" {
		t.Fatalf("собственные события студии должны отфильтровываться, got %v", events)
	}
}

func TestSyncBookingCreatedStoresUID(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{}
	bookings := &fakeBookingRepo{}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, &fakeCacheRepo{}, bookings, client, now)

	svc.SyncBookingCreated(context.Background(), &domain.Booking{
		ID:          "b1",
		ClientName:  "Jane",
		SessionType: "maternity",
		BookingDate: "2026-03-20",
		BookingTime: "10:00",
	})

	if client.putUID == "" {
		t.Fatal("событие должно записываться в календарь")
	}
	if bookings.uids["b1"] != "uid-123" {
		t.Fatalf("UID события должен сохраняться у брони, got %q", bookings.uids["b1"])
	}
}

func TestSyncBookingCreatedParsesTwelveHourTime(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{}
	bookings := &fakeBookingRepo{}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, &fakeCacheRepo{}, bookings, client, now)

	svc.SyncBookingCreated(context.Background(), &domain.Booking{
		ID:          "b1",
		ClientName:  "Jane",
		SessionType: "maternity",
		BookingDate: "2026-03-20",
		BookingTime: "2:00 PM",
	})

	if client.putUID == "" {
		t.Fatal("бронь со временем в 12-часовом формате должна записываться в календарь")
	}
	if client.putEvent.Start.Hour() != 14 || client.putEvent.Start.Minute() != 0 {
		t.Fatalf("начало события = %v, want 14:00", client.putEvent.Start)
	}
	if bookings.uids["b1"] != "uid-123" {
		t.Fatalf("UID события должен сохраняться у брони, got %q", bookings.uids["b1"])
	}
}

func TestSyncBookingCreatedResolvesCalendarName(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{calendars: []domain.CalendarInfo{
		{Name: "Брони", Path: "/calendars/bookings/"},
		{Name: "Personal", Path: "/calendars/personal/"},
	}}

	settings := configuredCalendarSettings()
	settings.BookingCalendar = "Брони"

	svc := newTestCalendar(&fakeSettingsRepo{calendar: settings}, &fakeCacheRepo{}, &fakeBookingRepo{}, client, now)

	svc.SyncBookingCreated(context.Background(), &domain.Booking{
		ID:          "b1",
		ClientName:  "Jane",
		SessionType: "maternity",
		BookingDate: "2026-03-20",
		BookingTime: "10:00",
	})

	if client.putPath != "/calendars/bookings/" {
		t.Fatalf("имя календаря должно разрешаться в путь коллекции, got %q", client.putPath)
	}
}

func TestSyncBookingCancelledRemovesEvent(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{}
	bookings := &fakeBookingRepo{}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, &fakeCacheRepo{}, bookings, client, now)

	svc.SyncBookingCancelled(context.Background(), &domain.Booking{
		ID:               "b1",
		CalendarEventUID: "uid-123",
	})

	if len(client.deleted) != 1 || client.deleted[0] != "uid-123" {
		t.Fatalf("событие брони должно удаляться, deleted=%v", client.deleted)
	}
	if uid, ok := bookings.uids["b1"]; !ok || uid != "" {
		t.Fatalf("UID должен очищаться, got %q", uid)
	}
}

func TestSyncBookingCancelledWithoutUID(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	client := &fakeCalDAVClient{}

	svc := newTestCalendar(&fakeSettingsRepo{calendar: configuredCalendarSettings()}, &fakeCacheRepo{}, &fakeBookingRepo{}, client, now)

	svc.SyncBookingCancelled(context.Background(), &domain.Booking{ID: "b1"})

	if len(client.deleted) != 0 {
		t.Fatal("бронь без UID не должна трогать календарь")
	}
}
