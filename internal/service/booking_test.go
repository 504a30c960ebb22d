package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/domain"
)

type fakeAvailability struct {
	result *domain.AvailableTimesResult
}

func (f *fakeAvailability) AvailableTimes(ctx context.Context, date, sessionType string) (*domain.AvailableTimesResult, error) {
	return f.result, nil
}

func (f *fakeAvailability) CalendarView(ctx context.Context, startDate, endDate string) (*domain.CalendarViewResult, error) {
	return &domain.CalendarViewResult{}, nil
}

func newTestBookingService(repo *fakeBookingRepo, availability AvailabilityService) *BookingServiceImpl {
	return NewBookingService(
		repo,
		availability,
		&fakeCalendarService{},
		NopNotifier{},
		config.StudioConfig{Name: "Silwer Lining"},
		zap.NewNop(),
	)
}

func TestCreateBookingSlotUnavailable(t *testing.T) {
	availability := &fakeAvailability{result: &domain.AvailableTimesResult{
		Date:           "2026-03-16",
		AvailableTimes: []string{"11:00"},
	}}
	svc := newTestBookingService(&fakeBookingRepo{}, availability)

	_, err := svc.Create(context.Background(), domain.CreateBookingDTO{
		ClientName:  "Jane",
		ClientEmail: "jane@example.com",
		SessionType: "maternity",
		BookingDate: "2026-03-16",
		BookingTime: "09:00",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("err = %v, want ErrSlotUnavailable", err)
	}
}

func TestCreateBookingWeekendSurcharge(t *testing.T) {
	availability := &fakeAvailability{result: &domain.AvailableTimesResult{
		Date:             "2026-03-21",
		AvailableTimes:   []string{"10:00"},
		IsWeekend:        true,
		WeekendSurcharge: 750,
	}}
	repo := &fakeBookingRepo{}
	svc := newTestBookingService(repo, availability)

	booking, err := svc.Create(context.Background(), domain.CreateBookingDTO{
		ClientName:   "Jane",
		ClientEmail:  "jane@example.com",
		SessionType:  "maternity",
		PackageID:    "pkg1",
		PackageName:  "Classic",
		PackagePrice: 2500,
		BookingDate:  "2026-03-21",
		BookingTime:  "10:00",
		SelectedAddons: []domain.SelectedAddon{
			{ID: "a1", Name: "Альбом", Price: 500},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.WeekendSurcharge != 750 {
		t.Fatalf("наценка = %v, want 750", booking.WeekendSurcharge)
	}
	if booking.AddonsTotal != 500 {
		t.Fatalf("сумма услуг = %v, want 500", booking.AddonsTotal)
	}
	if booking.TotalPrice != 2500+500+750 {
		t.Fatalf("итоговая цена = %v, want 3750", booking.TotalPrice)
	}
	if booking.Status != domain.BookingStatusPending {
		t.Fatalf("статус = %v, want pending", booking.Status)
	}
	if booking.ManageToken == "" {
		t.Fatal("бронь должна получать токен управления")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("броней в хранилище = %d, want 1", len(repo.bookings))
	}
}

func TestUpdateBookingRescheduleChecksAvailability(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []domain.Booking{
		{
			ID:          "b1",
			BookingDate: "2026-03-16",
			BookingTime: "09:00",
			SessionType: "maternity",
			Status:      domain.BookingStatusConfirmed,
		},
	}}
	availability := &fakeAvailability{result: &domain.AvailableTimesResult{
		AvailableTimes: []string{},
	}}
	svc := newTestBookingService(repo, availability)

	newTime := "11:00"
	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingDTO{BookingTime: &newTime})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("перенос на занятое время должен отклоняться, err = %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed},
	}}
	svc := newTestBookingService(repo, &fakeAvailability{result: &domain.AvailableTimesResult{}})

	if err := svc.Cancel(context.Background(), "b1"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if repo.bookings[0].Status != domain.BookingStatusCancelled {
		t.Fatalf("статус = %v, want cancelled", repo.bookings[0].Status)
	}
}

func TestListClampsLimit(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestBookingService(repo, &fakeAvailability{result: &domain.AvailableTimesResult{}})

	if _, _, err := svc.List(context.Background(), domain.BookingFilter{Limit: -5}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, _, err := svc.List(context.Background(), domain.BookingFilter{Limit: 1000}); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestManualBookingFlow(t *testing.T) {
	availability := &fakeAvailability{result: &domain.AvailableTimesResult{
		AvailableTimes: []string{"10:00"},
	}}
	repo := &fakeBookingRepo{}
	svc := newTestBookingService(repo, availability)

	booking, token, err := svc.CreateManual(context.Background(), domain.ManualBookingDTO{
		ClientName:  "Jane",
		ClientEmail: "jane@example.com",
		SessionType: "maternity",
		BookingDate: "2026-03-16",
		BookingTime: "10:00",
	})
	if err != nil {
		t.Fatalf("CreateManual: %v", err)
	}
	if booking.Status != domain.BookingStatusAwaitingClient {
		t.Fatalf("статус = %v, want awaiting_client", booking.Status)
	}
	if token == "" {
		t.Fatal("ручная бронь должна возвращать токен")
	}

	got, err := svc.GetByToken(context.Background(), token)
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got.ID != booking.ID {
		t.Fatalf("GetByToken вернул бронь %q, want %q", got.ID, booking.ID)
	}

	completed, err := svc.CompleteByToken(context.Background(), token, domain.CompleteBookingDTO{
		PackageID:    "pkg1",
		PackageName:  "Classic",
		PackagePrice: 2500,
		TotalPrice:   2500,
	})
	if err != nil {
		t.Fatalf("CompleteByToken: %v", err)
	}
	if completed.Status != domain.BookingStatusPending {
		t.Fatalf("статус после завершения = %v, want pending", completed.Status)
	}

	// токен одноразовый
	if _, err := svc.GetByToken(context.Background(), token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("использованный токен должен отклоняться, err = %v", err)
	}
}

func TestGetByTokenExpired(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []domain.Booking{{ID: "b1", Status: domain.BookingStatusAwaitingClient}},
		tokens: map[string]*domain.BookingToken{
			"t1": {Token: "t1", BookingID: "b1", ExpiresAt: time.Now().Add(-time.Hour)},
		},
	}
	svc := newTestBookingService(repo, &fakeAvailability{result: &domain.AvailableTimesResult{}})

	if _, err := svc.GetByToken(context.Background(), "t1"); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("просроченный токен должен отклоняться, err = %v", err)
	}

	if _, err := svc.GetByToken(context.Background(), "нет-такого"); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("неизвестный токен должен отклоняться, err = %v", err)
	}
}
