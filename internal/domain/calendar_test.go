package domain

import (
	"testing"
	"time"
)

func TestBusyIntervalOverlaps(t *testing.T) {
	busy := BusyInterval{StartMin: 10 * 60, EndMin: 12 * 60}
	duration := 2 * time.Hour

	cases := []struct {
		name string
		slot TimeOfDay
		want bool
	}{
		{"слот внутри промежутка", TimeOfDay{10, 30}, true},
		{"слот начинается до и заканчивается внутри", TimeOfDay{9, 0}, true},
		{"слот целиком накрывает промежуток", TimeOfDay{9, 30}, true},
		{"слот заканчивается точно в начале промежутка", TimeOfDay{8, 0}, false},
		{"слот начинается точно в конце промежутка", TimeOfDay{12, 0}, false},
		{"слот задолго до", TimeOfDay{6, 0}, false},
		{"слот после", TimeOfDay{14, 0}, false},
	}

	for _, tc := range cases {
		if got := busy.Overlaps(tc.slot, duration); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDayBusyIntervalsSingleDay(t *testing.T) {
	ev := CalendarEvent{
		Start: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 16, 12, 30, 0, 0, time.UTC),
	}

	day, _ := time.Parse(DateLayout, "2026-03-16")
	intervals := ev.DayBusyIntervals(day)
	if len(intervals) != 1 {
		t.Fatalf("интервалов = %d, want 1", len(intervals))
	}
	if intervals[0].StartMin != 600 || intervals[0].EndMin != 750 {
		t.Fatalf("интервал = %+v, want {600 750}", intervals[0])
	}

	other, _ := time.Parse(DateLayout, "2026-03-17")
	if got := ev.DayBusyIntervals(other); got != nil {
		t.Fatalf("событие не должно затрагивать другой день, got %+v", got)
	}
}

func TestDayBusyIntervalsMultiDay(t *testing.T) {
	ev := CalendarEvent{
		Start: time.Date(2026, 3, 16, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC),
	}

	first, _ := time.Parse(DateLayout, "2026-03-16")
	got := ev.DayBusyIntervals(first)
	if len(got) != 1 || got[0].StartMin != 18*60 {
		t.Fatalf("день начала: %+v", got)
	}

	middle, _ := time.Parse(DateLayout, "2026-03-17")
	got = ev.DayBusyIntervals(middle)
	if len(got) != 1 || got[0].StartMin != 0 || got[0].EndMin < 23*60 {
		t.Fatalf("средний день должен быть занят целиком: %+v", got)
	}

	last, _ := time.Parse(DateLayout, "2026-03-18")
	got = ev.DayBusyIntervals(last)
	if len(got) != 1 || got[0].StartMin != 0 || got[0].EndMin != 9*60 {
		t.Fatalf("день окончания: %+v", got)
	}
}

func TestDayBusyIntervalsAllDay(t *testing.T) {
	// однодневное событие "на весь день": конец эксклюзивен
	ev := CalendarEvent{
		Start: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	}
	if !ev.IsAllDay() {
		t.Fatal("событие должно распознаваться как событие на весь день")
	}

	day, _ := time.Parse(DateLayout, "2026-03-16")
	got := ev.DayBusyIntervals(day)
	if len(got) != 1 || got[0].StartMin != 0 || got[0].EndMin != 24*60 {
		t.Fatalf("покрытый день должен блокироваться целиком: %+v", got)
	}

	next, _ := time.Parse(DateLayout, "2026-03-17")
	if got := ev.DayBusyIntervals(next); got != nil {
		t.Fatalf("день окончания эксклюзивен, got %+v", got)
	}
}

func TestCalendarCacheStale(t *testing.T) {
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute

	var nilCache *CalendarCache
	if !nilCache.Stale(now, ttl) {
		t.Fatal("отсутствующий кэш должен считаться устаревшим")
	}

	empty := &CalendarCache{}
	if !empty.Stale(now, ttl) {
		t.Fatal("кэш без метки времени должен считаться устаревшим")
	}

	fresh := &CalendarCache{RefreshedAt: now.Add(-10 * time.Minute)}
	if fresh.Stale(now, ttl) {
		t.Fatal("кэш младше TTL не должен считаться устаревшим")
	}

	stale := &CalendarCache{RefreshedAt: now.Add(-16 * time.Minute)}
	if !stale.Stale(now, ttl) {
		t.Fatal("кэш старше TTL должен считаться устаревшим")
	}
}

func TestIsStudioEvent(t *testing.T) {
	marker := "silwerlining"

	cases := []struct {
		summary string
		want    bool
	}{
		{"\U0001F4F8 Maternity - Jane", true},
		{"Silwerlining booking", true},
		{"SILWERLINING shoot", true},
		{"Врач в 10:00", false},
		{"", false},
	}

	for _, tc := range cases {
		ev := CalendarEvent{Summary: tc.summary}
		if got := ev.IsStudioEvent(marker); got != tc.want {
			t.Fatalf("IsStudioEvent(%q) = %v, want %v", tc.summary, got, tc.want)
		}
	}

	ev := CalendarEvent{Summary: "обычное событие"}
	if ev.IsStudioEvent("") {
		t.Fatal("пустой маркер не должен совпадать со всем подряд")
	}
}

func TestCalendarSettingsServerURL(t *testing.T) {
	s := CalendarSettings{}
	if got := s.ServerURL(); got != DefaultCalDAVURL {
		t.Fatalf("ServerURL() = %q, want %q", got, DefaultCalDAVURL)
	}

	s.CalDAVURL = "https://caldav.example.com"
	if got := s.ServerURL(); got != "https://caldav.example.com" {
		t.Fatalf("ServerURL() = %q, явный адрес не должен подменяться", got)
	}
}
