package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "pending"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusCancelled       BookingStatus = "cancelled"
	BookingStatusAwaitingClient  BookingStatus = "awaiting_client"
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	BookingStatusAwaitingEFT     BookingStatus = "awaiting_eft"
	BookingStatusPaymentFailed   BookingStatus = "payment_failed"
	BookingStatusRescheduled     BookingStatus = "rescheduled"
)

// OccupiesSlot — бронь занимает свой слот в любом статусе кроме отмененного.
func (s BookingStatus) OccupiesSlot() bool {
	return s != BookingStatusCancelled
}

// StatusColor — цвет события в календаре администратора по статусу брони.
func (s BookingStatus) StatusColor() string {
	switch s {
	case BookingStatusPending:
		return "#F59E0B"
	case BookingStatusConfirmed:
		return "#10B981"
	case BookingStatusCompleted:
		return "#6B7280"
	case BookingStatusAwaitingClient:
		return "#8B5CF6"
	default:
		return "#C6A87C"
	}
}

type SelectedAddon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID                     string                 `json:"id"`
	ClientName             string                 `json:"client_name"`
	ClientEmail            string                 `json:"client_email"`
	ClientPhone            string                 `json:"client_phone"`
	SessionType            string                 `json:"session_type"`
	PackageID              string                 `json:"package_id"`
	PackageName            string                 `json:"package_name"`
	PackagePrice           float64                `json:"package_price"`
	BookingDate            string                 `json:"booking_date"`
	BookingTime            string                 `json:"booking_time"`
	Notes                  string                 `json:"notes"`
	SelectedAddons         []SelectedAddon        `json:"selected_addons"`
	AddonsTotal            float64                `json:"addons_total"`
	TotalPrice             float64                `json:"total_price"`
	WeekendSurcharge       float64                `json:"weekend_surcharge"`
	Status                 BookingStatus          `json:"status"`
	PaymentStatus          string                 `json:"payment_status"`
	PaymentMethod          string                 `json:"payment_method"`
	AmountPaid             float64                `json:"amount_paid"`
	ContractSigned         bool                   `json:"contract_signed"`
	ContractData           map[string]interface{} `json:"contract_data"`
	QuestionnaireResponses map[string]interface{} `json:"questionnaire_responses"`
	ManageToken            string                 `json:"manage_token"`
	CalendarEventUID       string                 `json:"calendar_event_uid,omitempty"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}

type CreateBookingDTO struct {
	ClientName             string                 `json:"client_name" binding:"required"`
	ClientEmail            string                 `json:"client_email" binding:"required,email"`
	ClientPhone            string                 `json:"client_phone" binding:"required"`
	SessionType            string                 `json:"session_type" binding:"required"`
	PackageID              string                 `json:"package_id" binding:"required"`
	PackageName            string                 `json:"package_name" binding:"required"`
	PackagePrice           float64                `json:"package_price"`
	BookingDate            string                 `json:"booking_date" binding:"required"`
	BookingTime            string                 `json:"booking_time" binding:"required"`
	Notes                  string                 `json:"notes"`
	SelectedAddons         []SelectedAddon        `json:"selected_addons"`
	AddonsTotal            float64                `json:"addons_total"`
	TotalPrice             float64                `json:"total_price"`
	WeekendSurcharge       float64                `json:"weekend_surcharge"`
	ContractSigned         bool                   `json:"contract_signed"`
	ContractData           map[string]interface{} `json:"contract_data"`
	QuestionnaireResponses map[string]interface{} `json:"questionnaire_responses"`
	PaymentMethod          string                 `json:"payment_method"`
}

type UpdateBookingDTO struct {
	ClientName    *string        `json:"client_name,omitempty"`
	ClientEmail   *string        `json:"client_email,omitempty"`
	ClientPhone   *string        `json:"client_phone,omitempty"`
	SessionType   *string        `json:"session_type,omitempty"`
	PackageID     *string        `json:"package_id,omitempty"`
	PackageName   *string        `json:"package_name,omitempty"`
	PackagePrice  *float64       `json:"package_price,omitempty"`
	BookingDate   *string        `json:"booking_date,omitempty"`
	BookingTime   *string        `json:"booking_time,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Status        *BookingStatus `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed completed cancelled awaiting_client awaiting_payment awaiting_eft payment_failed rescheduled"`
	PaymentStatus *string        `json:"payment_status,omitempty"`
}

type BookingFilter struct {
	Status      *BookingStatus
	DateFrom    *string
	DateTo      *string
	SessionType *string
	Limit       int
	Offset      int
}

// ManualBookingDTO — бронь, создаваемая администратором вручную; клиент
// завершает ее по одноразовой ссылке.
type ManualBookingDTO struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
	SessionType string `json:"session_type" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	Notes       string `json:"notes"`
}

type BookingToken struct {
	Token     string    `json:"token"`
	BookingID string    `json:"booking_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

// CompleteBookingDTO — данные, которыми клиент завершает ручную бронь.
type CompleteBookingDTO struct {
	PackageID              string                 `json:"package_id"`
	PackageName            string                 `json:"package_name"`
	PackagePrice           float64                `json:"package_price"`
	SelectedAddons         []SelectedAddon        `json:"selected_addons"`
	AddonsTotal            float64                `json:"addons_total"`
	TotalPrice             float64                `json:"total_price"`
	QuestionnaireResponses map[string]interface{} `json:"questionnaire_responses"`
	ClientPhone            string                 `json:"client_phone"`
	Notes                  string                 `json:"notes"`
}
