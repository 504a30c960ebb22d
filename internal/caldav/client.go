package caldav

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"

	"silwer/internal/domain"
)

// BookingEvent — данные события брони для записи во внешний календарь.
type BookingEvent struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Client — порт внешнего CalDAV-провайдера.
type Client interface {
	ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error)
	FetchEvents(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error)
	PutBookingEvent(ctx context.Context, calendarPath string, event BookingEvent) (string, error)
	DeleteEvent(ctx context.Context, calendarPath, uid string) error
}

// Factory создает клиента из актуальных настроек; настройки могут меняться
// администратором на лету, поэтому клиент не кэшируется.
type Factory func(settings domain.CalendarSettings) (Client, error)

type client struct {
	dav *caldav.Client
}

func NewClient(timeout time.Duration) Factory {
	return func(settings domain.CalendarSettings) (Client, error) {
		httpClient := webdav.HTTPClientWithBasicAuth(
			&http.Client{Timeout: timeout},
			settings.CalDAVUser,
			settings.CalDAVPassword,
		)

		dav, err := caldav.NewClient(httpClient, settings.ServerURL())
		if err != nil {
			return nil, fmt.Errorf("ошибка создания CalDAV клиента: %w", err)
		}

		return &client{dav: dav}, nil
	}
}

func (c *client) findCalendars(ctx context.Context) ([]caldav.Calendar, error) {
	principal, err := c.dav.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска принципала: %w", err)
	}

	homeSet, err := c.dav.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска домашней коллекции календарей: %w", err)
	}

	calendars, err := c.dav.FindCalendars(ctx, homeSet)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка календарей: %w", err)
	}

	return calendars, nil
}

func (c *client) ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error) {
	calendars, err := c.findCalendars(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.CalendarInfo, 0, len(calendars))
	for _, cal := range calendars {
		name := cal.Name
		if name == "" {
			name = cal.Path
		}
		infos = append(infos, domain.CalendarInfo{Name: name, Path: cal.Path})
	}

	return infos, nil
}

// FetchEvents собирает события всех календарей учетной записи за период.
// Ошибка одного календаря не прерывает обход остальных.
func (c *client) FetchEvents(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error) {
	calendars, err := c.findCalendars(ctx)
	if err != nil {
		return nil, err
	}

	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: "VCALENDAR",
			Comps: []caldav.CalendarCompRequest{{
				Name:  "VEVENT",
				Props: []string{"SUMMARY", "DTSTART", "DTEND", "UID"},
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{{
				Name:  "VEVENT",
				Start: start,
				End:   end,
			}},
		},
	}

	var events []domain.CalendarEvent
	for _, cal := range calendars {
		objects, err := c.dav.QueryCalendar(ctx, cal.Path, query)
		if err != nil {
			continue
		}

		calName := cal.Name
		if calName == "" {
			calName = cal.Path
		}

		for _, obj := range objects {
			if obj.Data == nil {
				continue
			}
			for _, ev := range obj.Data.Events() {
				summary, _ := ev.Props.Text(ical.PropSummary)

				evStart, err := ev.DateTimeStart(time.Local)
				if err != nil {
					continue
				}
				evEnd, err := ev.DateTimeEnd(time.Local)
				if err != nil || evEnd.IsZero() {
					evEnd = evStart
				}

				events = append(events, domain.CalendarEvent{
					Summary:      summary,
					Start:        evStart,
					End:          evEnd,
					CalendarName: calName,
				})
			}
		}
	}

	return events, nil
}

func (c *client) PutBookingEvent(ctx context.Context, calendarPath string, event BookingEvent) (string, error) {
	uid := uuid.New().String()

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, uid)
	ev.Props.SetText(ical.PropSummary, event.Summary)
	if event.Description != "" {
		ev.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Location != "" {
		ev.Props.SetText(ical.PropLocation, event.Location)
	}
	ev.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
	ev.Props.SetDateTime(ical.PropDateTimeStart, event.Start)
	ev.Props.SetDateTime(ical.PropDateTimeEnd, event.End)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//silwer//booking//EN")
	cal.Children = append(cal.Children, ev.Component)

	path := eventPath(calendarPath, uid)
	if _, err := c.dav.PutCalendarObject(ctx, path, cal); err != nil {
		return "", fmt.Errorf("ошибка записи события в календарь: %w", err)
	}

	return uid, nil
}

func (c *client) DeleteEvent(ctx context.Context, calendarPath, uid string) error {
	if err := c.dav.RemoveAll(ctx, eventPath(calendarPath, uid)); err != nil {
		return fmt.Errorf("ошибка удаления события из календаря: %w", err)
	}

	return nil
}

func eventPath(calendarPath, uid string) string {
	return strings.TrimRight(calendarPath, "/") + "/" + uid + ".ics"
}
