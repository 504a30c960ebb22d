package service

import (
	"context"

	"silwer/internal/domain"
)

// Notifier — порт исходящих уведомлений клиенту. Доставка (email, мессенджеры)
// подключается снаружи; сервисы бронирования не зависят от канала.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
	BookingStatusChanged(ctx context.Context, booking *domain.Booking)
	ManualBookingLink(ctx context.Context, booking *domain.Booking, link string)
}

type NopNotifier struct{}

func (NopNotifier) BookingCreated(ctx context.Context, booking *domain.Booking) {}

func (NopNotifier) BookingStatusChanged(ctx context.Context, booking *domain.Booking) {}

func (NopNotifier) ManualBookingLink(ctx context.Context, booking *domain.Booking, link string) {}
