package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay — каноническое представление времени слота, полученное из
// произвольной строки ("09:00", "2:00 PM"). Строки парсятся один раз на
// границе, внутренняя логика работает только с этим типом.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeSlot разбирает строку времени слота. Принимает 24-часовой формат
// ("9", "09:00") и 12-часовой с суффиксом AM/PM в любом регистре.
// Никогда не паникует: для неразборчивой строки возвращает ok=false,
// вызывающий код просто пропускает такой слот.
func ParseTimeSlot(raw string) (TimeOfDay, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	isPM := strings.Contains(s, "PM")
	isAM := strings.Contains(s, "AM")
	s = strings.ReplaceAll(s, "AM", "")
	s = strings.ReplaceAll(s, "PM", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return TimeOfDay{}, false
	}

	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, false
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return TimeOfDay{}, false
		}
	}

	if isPM && hour != 12 {
		hour += 12
	} else if isAM && hour == 12 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// Minutes возвращает время как количество минут от полуночи.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SlotKey — составной ключ слота (дата + исходная строка времени).
// Структурный ключ вместо конкатенации "date_time" исключает коллизии
// при подчеркиваниях внутри значений.
type SlotKey struct {
	Date string
	Time string
}

const DateLayout = "2006-01-02"

// DayID возвращает идентификатор дня недели для расписания: 0 — воскресенье,
// 6 — суббота. time.Weekday в Go уже отсчитывается от воскресенья.
func DayID(date time.Time) int {
	return int(date.Weekday())
}

// IsWeekendDay — суббота и воскресенье облагаются наценкой выходного дня.
func IsWeekendDay(dayID int) bool {
	return dayID == 0 || dayID == 6
}
