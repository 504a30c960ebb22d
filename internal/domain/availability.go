package domain

// AvailableTimesResult — ответ на запрос доступного времени на дату.
// Message заполняется только при пустом результате и различает
// заблокированную дату и день без настроенных слотов.
type AvailableTimesResult struct {
	Date             string   `json:"date"`
	AvailableTimes   []string `json:"available_times"`
	IsWeekend        bool     `json:"is_weekend"`
	WeekendSurcharge int      `json:"weekend_surcharge"`
	SessionType      string   `json:"session_type,omitempty"`
	CalendarBlocked  bool     `json:"calendar_blocked"`
	Message          string   `json:"message,omitempty"`
}

// CalendarViewResult — единый оверлей событий за период для календаря
// администратора.
type CalendarViewResult struct {
	Events []CalendarViewEvent `json:"events"`
}
