package domain

import (
	"sort"
	"time"
)

// DaySchedule — слоты по дням недели: ключ — day-id строкой ("0" — воскресенье).
type DaySchedule map[string][]string

// BookingSettings — единственная строка настроек бронирования.
// TimeSlotSchedule: тип съемки → day-id → список строк времени.
type BookingSettings struct {
	ID                 string                 `json:"id"`
	TimeSlotSchedule   map[string]DaySchedule `json:"time_slot_schedule"`
	BlockedDates       []string               `json:"blocked_dates"`
	MaxBookingsPerSlot int                    `json:"max_bookings_per_slot"`
	AdvanceBookingDays int                    `json:"advance_booking_days"`
	MinAdvanceHours    int                    `json:"min_advance_hours"`
	WeekendSurcharge   int                    `json:"weekend_surcharge"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// DefaultBookingSettings — поведение при полностью отсутствующей строке
// настроек: пустое расписание, наценка по умолчанию.
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		ID:                 "default",
		TimeSlotSchedule:   map[string]DaySchedule{},
		BlockedDates:       []string{},
		MaxBookingsPerSlot: 1,
		AdvanceBookingDays: 90,
		MinAdvanceHours:    24,
		WeekendSurcharge:   750,
	}
}

// DateBlocked проверяет явную блокировку даты администратором.
func (s BookingSettings) DateBlocked(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// SlotsForDay возвращает кандидатов расписания на день. При заданном типе
// съемки — его слоты; без фильтра — отсортированное объединение слотов всех
// типов. Пустой результат — легитимный "полностью недоступный день".
func (s BookingSettings) SlotsForDay(sessionType string, dayKey string) []string {
	if sessionType != "" {
		if sched, ok := s.TimeSlotSchedule[sessionType]; ok {
			return append([]string(nil), sched[dayKey]...)
		}
		return nil
	}

	seen := make(map[string]bool)
	var all []string
	for _, sched := range s.TimeSlotSchedule {
		for _, slot := range sched[dayKey] {
			if !seen[slot] {
				seen[slot] = true
				all = append(all, slot)
			}
		}
	}
	sort.Strings(all)
	return all
}

// AllSlotsByDay агрегирует слоты всех типов съемки по day-id — основа
// генерации открытых слотов в календаре администратора.
func (s BookingSettings) AllSlotsByDay() map[string]map[string]bool {
	byDay := make(map[string]map[string]bool)
	for _, sched := range s.TimeSlotSchedule {
		for dayKey, slots := range sched {
			if byDay[dayKey] == nil {
				byDay[dayKey] = make(map[string]bool)
			}
			for _, slot := range slots {
				byDay[dayKey][slot] = true
			}
		}
	}
	return byDay
}

type UpdateBookingSettingsDTO struct {
	TimeSlotSchedule   *map[string]DaySchedule `json:"time_slot_schedule,omitempty"`
	BlockedDates       *[]string               `json:"blocked_dates,omitempty"`
	MaxBookingsPerSlot *int                    `json:"max_bookings_per_slot,omitempty"`
	AdvanceBookingDays *int                    `json:"advance_booking_days,omitempty"`
	MinAdvanceHours    *int                    `json:"min_advance_hours,omitempty"`
	WeekendSurcharge   *int                    `json:"weekend_surcharge,omitempty"`
}

// PaymentSettings — банковские реквизиты и включенные способы оплаты.
// Протоколы платежных шлюзов вне зоны ответственности сервиса.
type PaymentSettings struct {
	ID              string    `json:"id"`
	BankName        string    `json:"bank_name"`
	AccountHolder   string    `json:"account_holder"`
	AccountNumber   string    `json:"account_number"`
	BranchCode      string    `json:"branch_code"`
	AccountType     string    `json:"account_type"`
	ReferenceFormat string    `json:"reference_format"`
	PayFastEnabled  bool      `json:"payfast_enabled"`
	PayFlexEnabled  bool      `json:"payflex_enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		ID:              "default",
		ReferenceFormat: "BOOKING-{booking_id}",
		PayFastEnabled:  true,
	}
}

// PublicView скрывает служебные поля от публичного эндпоинта.
type PaymentSettingsPublic struct {
	BankName        string `json:"bank_name"`
	AccountHolder   string `json:"account_holder"`
	AccountNumber   string `json:"account_number"`
	BranchCode      string `json:"branch_code"`
	AccountType     string `json:"account_type"`
	ReferenceFormat string `json:"reference_format"`
	PayFastEnabled  bool   `json:"payfast_enabled"`
	PayFlexEnabled  bool   `json:"payflex_enabled"`
}

func (s PaymentSettings) PublicView() PaymentSettingsPublic {
	return PaymentSettingsPublic{
		BankName:        s.BankName,
		AccountHolder:   s.AccountHolder,
		AccountNumber:   s.AccountNumber,
		BranchCode:      s.BranchCode,
		AccountType:     s.AccountType,
		ReferenceFormat: s.ReferenceFormat,
		PayFastEnabled:  s.PayFastEnabled,
		PayFlexEnabled:  s.PayFlexEnabled,
	}
}

type UpdatePaymentSettingsDTO struct {
	BankName        *string `json:"bank_name,omitempty"`
	AccountHolder   *string `json:"account_holder,omitempty"`
	AccountNumber   *string `json:"account_number,omitempty"`
	BranchCode      *string `json:"branch_code,omitempty"`
	AccountType     *string `json:"account_type,omitempty"`
	ReferenceFormat *string `json:"reference_format,omitempty"`
	PayFastEnabled  *bool   `json:"payfast_enabled,omitempty"`
	PayFlexEnabled  *bool   `json:"payflex_enabled,omitempty"`
}
