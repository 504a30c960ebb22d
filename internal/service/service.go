package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"silwer/config"
	"silwer/internal/caldav"
	"silwer/internal/domain"
	"silwer/internal/repository"
	"silwer/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	CalDAV      caldav.Factory
	Notifier    Notifier
}

type Services struct {
	Availability  AvailabilityService
	Calendar      CalendarService
	Booking       BookingService
	Slot          SlotService
	Settings      SettingsService
	Package       PackageService
	Addon         AddonService
	Portfolio     PortfolioService
	Testimonial   TestimonialService
	FAQ           FAQService
	Questionnaire QuestionnaireService
	Contract      ContractService
	Contact       ContactService
	Auth          AuthService
}

func NewServices(deps Deps) *Services {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}

	calendar := NewCalendarService(
		deps.Repos.Settings,
		deps.Repos.CalendarCache,
		deps.Repos.Booking,
		deps.CalDAV,
		deps.Config.Availability,
		deps.Config.Studio,
		deps.Logger,
	)
	availability := NewAvailabilityService(
		deps.Repos.Settings,
		deps.Repos.Booking,
		deps.Repos.Slot,
		calendar,
		deps.Config.Availability,
		deps.Logger,
	)

	return &Services{
		Availability:  availability,
		Calendar:      calendar,
		Booking:       NewBookingService(deps.Repos.Booking, availability, calendar, notifier, deps.Config.Studio, deps.Logger),
		Slot:          NewSlotService(deps.Repos.Slot, deps.Logger),
		Settings:      NewSettingsService(deps.Repos.Settings, calendar, deps.Logger),
		Package:       NewPackageService(deps.Repos.Package, deps.Logger),
		Addon:         NewAddonService(deps.Repos.Addon, deps.Logger),
		Portfolio:     NewPortfolioService(deps.Repos.Portfolio, deps.FileStorage, deps.Logger),
		Testimonial:   NewTestimonialService(deps.Repos.Testimonial, deps.Logger),
		FAQ:           NewFAQService(deps.Repos.FAQ, deps.Logger),
		Questionnaire: NewQuestionnaireService(deps.Repos.Questionnaire, deps.Logger),
		Contract:      NewContractService(deps.Repos.Contract, deps.Logger),
		Contact:       NewContactService(deps.Repos.Contact, deps.Logger),
		Auth:          NewAuthService(deps.Repos.Auth, deps.Config.JWT, deps.Logger),
	}
}

type AvailabilityService interface {
	AvailableTimes(ctx context.Context, date, sessionType string) (*domain.AvailableTimesResult, error)
	CalendarView(ctx context.Context, startDate, endDate string) (*domain.CalendarViewResult, error)
}

type CalendarService interface {
	EventsInRange(ctx context.Context, start, end time.Time) ([]domain.CalendarEvent, error)
	Refresh(ctx context.Context) error
	ListCalendars(ctx context.Context) ([]domain.CalendarInfo, error)
	SyncBookingCreated(ctx context.Context, booking *domain.Booking)
	SyncBookingCancelled(ctx context.Context, booking *domain.Booking)
}

type BookingService interface {
	Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, dto domain.UpdateBookingDTO) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)

	CreateManual(ctx context.Context, dto domain.ManualBookingDTO) (*domain.Booking, string, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	CompleteByToken(ctx context.Context, token string, dto domain.CompleteBookingDTO) (*domain.Booking, error)
}

type SlotService interface {
	CreateBlocked(ctx context.Context, dto domain.CreateBlockedSlotDTO) (*domain.BlockedSlot, error)
	DeleteBlocked(ctx context.Context, id string) error
	ListBlocked(ctx context.Context, startDate, endDate string) ([]domain.BlockedSlot, error)

	CreateCustom(ctx context.Context, dto domain.CreateCustomSlotDTO) (*domain.CustomSlot, error)
	DeleteCustom(ctx context.Context, id string) error
	ListCustom(ctx context.Context, startDate, endDate string) ([]domain.CustomSlot, error)
}

type SettingsService interface {
	GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error)
	UpdateBookingSettings(ctx context.Context, dto domain.UpdateBookingSettingsDTO) (*domain.BookingSettings, error)
	GetCalendarSettings(ctx context.Context) (*domain.CalendarSettings, error)
	UpdateCalendarSettings(ctx context.Context, dto domain.UpdateCalendarSettingsDTO) (*domain.CalendarSettings, error)
	GetPaymentSettings(ctx context.Context) (*domain.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, dto domain.UpdatePaymentSettingsDTO) (*domain.PaymentSettings, error)
}

type PackageService interface {
	EnsureDefaults(ctx context.Context) error
	Create(ctx context.Context, dto domain.CreatePackageDTO) (*domain.Package, error)
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	Update(ctx context.Context, id string, dto domain.UpdatePackageDTO) (*domain.Package, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error)
}

type AddonService interface {
	Create(ctx context.Context, dto domain.CreateAddonDTO) (*domain.Addon, error)
	Update(ctx context.Context, id string, dto domain.UpdateAddonDTO) (*domain.Addon, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool, sessionType string) ([]domain.Addon, error)
}

type PortfolioService interface {
	Create(ctx context.Context, dto domain.CreatePortfolioItemDTO) (*domain.PortfolioItem, error)
	Upload(ctx context.Context, dto domain.CreatePortfolioItemDTO, image []byte, filename string) (*domain.PortfolioItem, error)
	Update(ctx context.Context, id string, dto domain.UpdatePortfolioItemDTO) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error)
}

type TestimonialService interface {
	Create(ctx context.Context, dto domain.CreateTestimonialDTO) (*domain.Testimonial, error)
	Approve(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, approvedOnly bool) ([]domain.Testimonial, error)
}

type FAQService interface {
	Create(ctx context.Context, dto domain.CreateFAQDTO) (*domain.FAQ, error)
	Update(ctx context.Context, id string, dto domain.UpdateFAQDTO) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category *string, activeOnly bool) ([]domain.FAQ, error)
}

type QuestionnaireService interface {
	Create(ctx context.Context, dto domain.CreateQuestionnaireDTO) (*domain.Questionnaire, error)
	GetByID(ctx context.Context, id string) (*domain.Questionnaire, error)
	GetActiveBySessionType(ctx context.Context, sessionType string) (*domain.Questionnaire, error)
	Update(ctx context.Context, id string, dto domain.UpdateQuestionnaireDTO) (*domain.Questionnaire, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Questionnaire, error)
}

type ContractService interface {
	Get(ctx context.Context) (*domain.ContractTemplate, error)
	Update(ctx context.Context, dto domain.UpdateContractTemplateDTO) (*domain.ContractTemplate, error)
}

type ContactService interface {
	Create(ctx context.Context, dto domain.CreateContactMessageDTO) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	Refresh(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(token string) (int64, error)
	EnsureDefaultAdmin(ctx context.Context, email, password, name string) error
}
