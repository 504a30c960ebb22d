package domain

import "time"

// BlockedSlot — разовая блокировка конкретной даты и времени администратором.
type BlockedSlot struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBlockedSlotDTO struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

// CustomSlot — разовый дополнительный слот вне регулярного расписания.
// Уникален по паре (дата, время).
type CustomSlot struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	SessionType string    `json:"session_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCustomSlotDTO struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	SessionType string `json:"session_type"`
}

func (s BlockedSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}

func (s CustomSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}
