package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/domain"
)

type fakeSettingsRepo struct {
	booking  *domain.BookingSettings
	calendar *domain.CalendarSettings
	payment  *domain.PaymentSettings
}

func (f *fakeSettingsRepo) GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	return f.booking, nil
}

func (f *fakeSettingsRepo) UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error {
	f.booking = &settings
	return nil
}

func (f *fakeSettingsRepo) GetCalendarSettings(ctx context.Context) (*domain.CalendarSettings, error) {
	return f.calendar, nil
}

func (f *fakeSettingsRepo) UpsertCalendarSettings(ctx context.Context, settings domain.CalendarSettings) error {
	f.calendar = &settings
	return nil
}

func (f *fakeSettingsRepo) GetPaymentSettings(ctx context.Context) (*domain.PaymentSettings, error) {
	return f.payment, nil
}

func (f *fakeSettingsRepo) UpsertPaymentSettings(ctx context.Context, settings domain.PaymentSettings) error {
	f.payment = &settings
	return nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	tokens   map[string]*domain.BookingToken
	uids     map[string]string
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking domain.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking domain.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == booking.ID {
			f.bookings[i] = booking
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	return f.bookings, len(f.bookings), nil
}

func (f *fakeBookingRepo) FindByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.BookingDate == date && b.Status.OccupiesSlot() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.BookingDate >= startDate && b.BookingDate <= endDate && b.Status.OccupiesSlot() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetCalendarEventUID(ctx context.Context, id, uid string) error {
	if f.uids == nil {
		f.uids = make(map[string]string)
	}
	f.uids[id] = uid
	return nil
}

func (f *fakeBookingRepo) CreateToken(ctx context.Context, token domain.BookingToken) error {
	if f.tokens == nil {
		f.tokens = make(map[string]*domain.BookingToken)
	}
	t := token
	f.tokens[token.Token] = &t
	return nil
}

func (f *fakeBookingRepo) GetToken(ctx context.Context, token string) (*domain.BookingToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) MarkTokenUsed(ctx context.Context, token string) error {
	if t, ok := f.tokens[token]; ok {
		t.Used = true
		return nil
	}
	return domain.ErrNotFound
}

type fakeSlotRepo struct {
	blocked   []domain.BlockedSlot
	custom    []domain.CustomSlot
	customErr error
}

func (f *fakeSlotRepo) CreateBlocked(ctx context.Context, slot domain.BlockedSlot) error {
	f.blocked = append(f.blocked, slot)
	return nil
}

func (f *fakeSlotRepo) DeleteBlocked(ctx context.Context, id string) error {
	return nil
}

func (f *fakeSlotRepo) BlockedByDateRange(ctx context.Context, startDate, endDate string) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	for _, s := range f.blocked {
		if s.Date >= startDate && s.Date <= endDate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) CreateCustom(ctx context.Context, slot domain.CustomSlot) error {
	if f.customErr != nil {
		return f.customErr
	}
	f.custom = append(f.custom, slot)
	return nil
}

func (f *fakeSlotRepo) DeleteCustom(ctx context.Context, id string) error {
	return nil
}

func (f *fakeSlotRepo) CustomByDateRange(ctx context.Context, startDate, endDate string) ([]domain.CustomSlot, error) {
	var out []domain.CustomSlot
	for _, s := range f.custom {
		if s.Date >= startDate && s.Date <= endDate {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCalendarService struct {
	events []domain.CalendarEvent
	err    error
}

func (f *fakeCalendarService) EventsInRange(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeCalendarService) Refresh(ctx context.Context) error { return nil }

func (f *fakeCalendarService) ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error) {
	return nil, nil
}

func (f *fakeCalendarService) SyncBookingCreated(ctx context.Context, booking *domain.Booking) {}

func (f *fakeCalendarService) SyncBookingCancelled(ctx context.Context, booking *domain.Booking) {}

func testBookingSettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		ID: "default",
		TimeSlotSchedule: map[string]domain.DaySchedule{
			"maternity": {
				// 2026-03-16 — понедельник (day-id 1)
				"1": {"09:00", "11:00", "2:00 PM"},
			},
			"family": {
				"1": {"09:00", "4:00 PM"},
			},
		},
		BlockedDates:     []string{},
		WeekendSurcharge: 750,
	}
}

func newTestAvailability(settings *fakeSettingsRepo, bookings *fakeBookingRepo, slots *fakeSlotRepo, calendar CalendarService) *AvailabilityServiceImpl {
	return NewAvailabilityService(
		settings,
		bookings,
		slots,
		calendar,
		config.AvailabilityConfig{SessionDuration: 2 * time.Hour, CacheTTL: 15 * time.Minute},
		zap.NewNop(),
	)
}

func TestAvailableTimesSchedule(t *testing.T) {
	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}

	want := []string{"09:00", "11:00", "2:00 PM"}
	if len(result.AvailableTimes) != len(want) {
		t.Fatalf("слотов = %v, want %v", result.AvailableTimes, want)
	}
	for i, slot := range want {
		if result.AvailableTimes[i] != slot {
			t.Fatalf("слотов = %v, want %v", result.AvailableTimes, want)
		}
	}
	if result.IsWeekend {
		t.Fatal("понедельник не должен быть выходным")
	}
}

func TestAvailableTimesBlockedDate(t *testing.T) {
	settings := testBookingSettings()
	settings.BlockedDates = []string{"2026-03-16"}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: settings},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if len(result.AvailableTimes) != 0 {
		t.Fatalf("заблокированная дата должна быть пустой, got %v", result.AvailableTimes)
	}
	if result.Message == "" {
		t.Fatal("ожидалось сообщение о блокировке даты")
	}
}

func TestAvailableTimesExcludesBookedAndBlocked(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: "b1", BookingDate: "2026-03-16", BookingTime: "09:00", Status: domain.BookingStatusConfirmed},
	}}
	slots := &fakeSlotRepo{blocked: []domain.BlockedSlot{
		{ID: "s1", Date: "2026-03-16", Time: "11:00"},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		bookings,
		slots,
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if len(result.AvailableTimes) != 1 || result.AvailableTimes[0] != "2:00 PM" {
		t.Fatalf("ожидался единственный слот 2:00 PM, got %v", result.AvailableTimes)
	}
}

func TestAvailableTimesCancelledBookingFreesSlot(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: "b1", BookingDate: "2026-03-16", BookingTime: "09:00", Status: domain.BookingStatusCancelled},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		bookings,
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	found := false
	for _, slot := range result.AvailableTimes {
		if slot == "09:00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("отмененная бронь должна освобождать слот, got %v", result.AvailableTimes)
	}
}

func TestAvailableTimesCustomSlotAdds(t *testing.T) {
	slots := &fakeSlotRepo{custom: []domain.CustomSlot{
		{ID: "c1", Date: "2026-03-16", Time: "18:00", SessionType: "maternity"},
		{ID: "c2", Date: "2026-03-16", Time: "19:00", SessionType: "family"},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		slots,
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}

	has18, has19 := false, false
	for _, slot := range result.AvailableTimes {
		if slot == "18:00" {
			has18 = true
		}
		if slot == "19:00" {
			has19 = true
		}
	}
	if !has18 || !has19 {
		t.Fatalf("разовые слоты добавляются независимо от типа съемки, got %v", result.AvailableTimes)
	}
}

func TestAvailableTimesWeekendSurcharge(t *testing.T) {
	settings := testBookingSettings()
	settings.TimeSlotSchedule["maternity"]["6"] = []string{"10:00"}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: settings},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	// 2026-03-21 — суббота
	result, err := svc.AvailableTimes(context.Background(), "2026-03-21", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if !result.IsWeekend {
		t.Fatal("суббота должна помечаться выходным")
	}
	if result.WeekendSurcharge != 750 {
		t.Fatalf("наценка = %d, want 750", result.WeekendSurcharge)
	}
}

func TestAvailableTimesWeekdayNoSurcharge(t *testing.T) {
	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	// 2026-03-16 — понедельник
	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if result.IsWeekend {
		t.Fatal("понедельник не должен быть выходным")
	}
	if result.WeekendSurcharge != 0 {
		t.Fatalf("в будний день наценка = %d, want 0", result.WeekendSurcharge)
	}
}

func TestAvailableTimesCalendarBusyInterval(t *testing.T) {
	// личное событие 10:00-12:00: слоты 09:00 и 11:00 пересекаются с ним
	// при двухчасовой сессии, 2:00 PM остается свободным
	calendar := &fakeCalendarService{events: []domain.CalendarEvent{
		{
			Summary: "Врач",
			Start:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
		},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		calendar,
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if len(result.AvailableTimes) != 1 || result.AvailableTimes[0] != "2:00 PM" {
		t.Fatalf("ожидался единственный слот 2:00 PM, got %v", result.AvailableTimes)
	}
	if !result.CalendarBlocked {
		t.Fatal("исключение слотов календарем должно помечаться флагом")
	}
}

func TestAvailableTimesAllDayEventBlocksDay(t *testing.T) {
	calendar := &fakeCalendarService{events: []domain.CalendarEvent{
		{
			Summary: "Отпуск",
			Start:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		calendar,
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if !result.CalendarBlocked {
		t.Fatal("день с событием на весь день должен помечаться занятым")
	}
	if len(result.AvailableTimes) != 0 {
		t.Fatalf("слотов быть не должно, got %v", result.AvailableTimes)
	}
}

func TestAvailableTimesDefaultSettings(t *testing.T) {
	// при отсутствии строки настроек используется пустое расписание
	svc := newTestAvailability(
		&fakeSettingsRepo{},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "2026-03-16", "maternity")
	if err != nil {
		t.Fatalf("AvailableTimes: %v", err)
	}
	if len(result.AvailableTimes) != 0 {
		t.Fatalf("пустое расписание, got %v", result.AvailableTimes)
	}
	if result.Message == "" {
		t.Fatal("ожидалось сообщение об отсутствии времени")
	}
}

func TestAvailableTimesInvalidDate(t *testing.T) {
	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	result, err := svc.AvailableTimes(context.Background(), "16-03-2026", "maternity")
	if err != nil {
		t.Fatalf("кривая дата не должна быть ошибкой: %v", err)
	}
	if len(result.AvailableTimes) != 0 {
		t.Fatalf("слотов быть не должно, got %v", result.AvailableTimes)
	}
	if result.Message == "" {
		t.Fatal("ожидалось сообщение о формате даты")
	}
	if result.WeekendSurcharge != 0 {
		t.Fatalf("наценка = %d, want 0", result.WeekendSurcharge)
	}
}

func TestCalendarViewNoDoubleCount(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{
			ID:          "b1",
			ClientName:  "Jane",
			SessionType: "maternity",
			BookingDate: "2026-03-16",
			BookingTime: "09:00",
			Status:      domain.BookingStatusConfirmed,
		},
	}}
	slots := &fakeSlotRepo{blocked: []domain.BlockedSlot{
		{ID: "s1", Date: "2026-03-16", Time: "11:00", Reason: "уборка"},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		bookings,
		slots,
		&fakeCalendarService{},
	)

	result, err := svc.CalendarView(context.Background(), "2026-03-16", "2026-03-16")
	if err != nil {
		t.Fatalf("CalendarView: %v", err)
	}

	counts := make(map[string]int)
	for _, ev := range result.Events {
		if ev.ExtendedProps["type"] == "open" {
			counts[ev.ID]++
		}
	}
	if counts["open-2026-03-16-09:00"] != 0 {
		t.Fatal("занятый бронью слот не должен выдаваться открытым")
	}
	if counts["open-2026-03-16-11:00"] != 0 {
		t.Fatal("заблокированный слот не должен выдаваться открытым")
	}
	if counts["open-2026-03-16-2:00 PM"] != 1 {
		t.Fatalf("свободный слот должен попадать в оверлей ровно один раз, counts=%v", counts)
	}
}

func TestCalendarViewExcludesCalendarBusySlots(t *testing.T) {
	// личное событие 10:00-12:00: при двухчасовой сессии слоты 09:00 и
	// 11:00 не могут выдаваться открытыми
	calendar := &fakeCalendarService{events: []domain.CalendarEvent{
		{
			Summary: "Врач",
			Start:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
		},
	}}

	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		calendar,
	)

	result, err := svc.CalendarView(context.Background(), "2026-03-16", "2026-03-16")
	if err != nil {
		t.Fatalf("CalendarView: %v", err)
	}

	open := make(map[string]bool)
	for _, ev := range result.Events {
		if ev.ExtendedProps["type"] == "open" {
			open[ev.ID] = true
		}
	}
	if open["open-2026-03-16-09:00"] {
		t.Fatal("слот 09:00 пересекается с личным событием и не должен быть открытым")
	}
	if open["open-2026-03-16-11:00"] {
		t.Fatal("слот 11:00 пересекается с личным событием и не должен быть открытым")
	}
	if !open["open-2026-03-16-2:00 PM"] {
		t.Fatalf("слот 2:00 PM не пересекается с событием и должен остаться открытым, open=%v", open)
	}
}

func TestCalendarViewInvalidRange(t *testing.T) {
	svc := newTestAvailability(
		&fakeSettingsRepo{booking: testBookingSettings()},
		&fakeBookingRepo{},
		&fakeSlotRepo{},
		&fakeCalendarService{},
	)

	if _, err := svc.CalendarView(context.Background(), "2026-03-20", "2026-03-16"); err == nil {
		t.Fatal("ожидалась ошибка обратного диапазона")
	}
}
