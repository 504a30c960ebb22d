package domain

import (
	"testing"
	"time"
)

func TestParseTimeSlot(t *testing.T) {
	cases := []struct {
		raw    string
		want   TimeOfDay
		wantOK bool
	}{
		{"09:00", TimeOfDay{9, 0}, true},
		{"9", TimeOfDay{9, 0}, true},
		{"14:30", TimeOfDay{14, 30}, true},
		{"2:00 PM", TimeOfDay{14, 0}, true},
		{"2:00PM", TimeOfDay{14, 0}, true},
		{"2:00 pm", TimeOfDay{14, 0}, true},
		{"12:00 PM", TimeOfDay{12, 0}, true},
		{"12:00 AM", TimeOfDay{0, 0}, true},
		{"11:30 am", TimeOfDay{11, 30}, true},
		{" 10:15 ", TimeOfDay{10, 15}, true},
		{"", TimeOfDay{}, false},
		{"abc", TimeOfDay{}, false},
		{"25:00", TimeOfDay{}, false},
		{"10:75", TimeOfDay{}, false},
		{"-1:00", TimeOfDay{}, false},
		{"PM", TimeOfDay{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseTimeSlot(tc.raw)
		if ok != tc.wantOK {
			t.Fatalf("ParseTimeSlot(%q): ok = %v, want %v", tc.raw, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseTimeSlot(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	if got := (TimeOfDay{14, 30}).Minutes(); got != 870 {
		t.Fatalf("Minutes() = %d, want 870", got)
	}
	if got := (TimeOfDay{0, 0}).Minutes(); got != 0 {
		t.Fatalf("Minutes() = %d, want 0", got)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := (TimeOfDay{9, 5}).String(); got != "09:05" {
		t.Fatalf("String() = %q, want %q", got, "09:05")
	}
}

func TestDayID(t *testing.T) {
	sunday, _ := time.Parse(DateLayout, "2026-03-15")
	if got := DayID(sunday); got != 0 {
		t.Fatalf("DayID(воскресенье) = %d, want 0", got)
	}

	monday, _ := time.Parse(DateLayout, "2026-03-16")
	if got := DayID(monday); got != 1 {
		t.Fatalf("DayID(понедельник) = %d, want 1", got)
	}

	saturday, _ := time.Parse(DateLayout, "2026-03-21")
	if got := DayID(saturday); got != 6 {
		t.Fatalf("DayID(суббота) = %d, want 6", got)
	}
}

func TestIsWeekendDay(t *testing.T) {
	if !IsWeekendDay(0) || !IsWeekendDay(6) {
		t.Fatal("суббота и воскресенье должны считаться выходными")
	}
	for dayID := 1; dayID <= 5; dayID++ {
		if IsWeekendDay(dayID) {
			t.Fatalf("день %d не должен считаться выходным", dayID)
		}
	}
}
