package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type Repositories struct {
	Booking       BookingRepository
	Settings      SettingsRepository
	Slot          SlotRepository
	CalendarCache CalendarCacheRepository
	Package       PackageRepository
	Addon         AddonRepository
	Portfolio     PortfolioRepository
	Testimonial   TestimonialRepository
	FAQ           FAQRepository
	Questionnaire QuestionnaireRepository
	Contract      ContractRepository
	Contact       ContactRepository
	Auth          AuthRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Booking:       NewBookingRepository(db),
		Settings:      NewSettingsRepository(db),
		Slot:          NewSlotRepository(db),
		CalendarCache: NewCalendarCacheRepository(db),
		Package:       NewPackageRepository(db),
		Addon:         NewAddonRepository(db),
		Portfolio:     NewPortfolioRepository(db),
		Testimonial:   NewTestimonialRepository(db),
		FAQ:           NewFAQRepository(db),
		Questionnaire: NewQuestionnaireRepository(db),
		Contract:      NewContractRepository(db),
		Contact:       NewContactRepository(db),
		Auth:          NewAuthRepository(db),
	}
}

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)
	FindByDate(ctx context.Context, date string) ([]domain.Booking, error)
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Booking, error)
	SetCalendarEventUID(ctx context.Context, id, uid string) error

	CreateToken(ctx context.Context, token domain.BookingToken) error
	GetToken(ctx context.Context, token string) (*domain.BookingToken, error)
	MarkTokenUsed(ctx context.Context, token string) error
}

type SettingsRepository interface {
	GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error)
	UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error
	GetCalendarSettings(ctx context.Context) (*domain.CalendarSettings, error)
	UpsertCalendarSettings(ctx context.Context, settings domain.CalendarSettings) error
	GetPaymentSettings(ctx context.Context) (*domain.PaymentSettings, error)
	UpsertPaymentSettings(ctx context.Context, settings domain.PaymentSettings) error
}

type SlotRepository interface {
	CreateBlocked(ctx context.Context, slot domain.BlockedSlot) error
	DeleteBlocked(ctx context.Context, id string) error
	BlockedByDateRange(ctx context.Context, startDate, endDate string) ([]domain.BlockedSlot, error)

	CreateCustom(ctx context.Context, slot domain.CustomSlot) error
	DeleteCustom(ctx context.Context, id string) error
	CustomByDateRange(ctx context.Context, startDate, endDate string) ([]domain.CustomSlot, error)
}

type CalendarCacheRepository interface {
	Get(ctx context.Context) (*domain.CalendarCache, error)
	Upsert(ctx context.Context, cache domain.CalendarCache) error
}

type PackageRepository interface {
	Create(ctx context.Context, pkg domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	Update(ctx context.Context, pkg domain.Package) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error)
}

type AddonRepository interface {
	Create(ctx context.Context, addon domain.Addon) error
	GetByID(ctx context.Context, id string) (*domain.Addon, error)
	Update(ctx context.Context, addon domain.Addon) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]domain.Addon, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, item domain.PortfolioItem) error
	GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	Update(ctx context.Context, item domain.PortfolioItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial domain.Testimonial) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, approvedOnly bool) ([]domain.Testimonial, error)
}

type FAQRepository interface {
	Create(ctx context.Context, faq domain.FAQ) error
	GetByID(ctx context.Context, id string) (*domain.FAQ, error)
	Update(ctx context.Context, faq domain.FAQ) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category *string, activeOnly bool) ([]domain.FAQ, error)
}

type QuestionnaireRepository interface {
	Create(ctx context.Context, questionnaire domain.Questionnaire) error
	GetByID(ctx context.Context, id string) (*domain.Questionnaire, error)
	GetActiveBySessionType(ctx context.Context, sessionType string) (*domain.Questionnaire, error)
	Update(ctx context.Context, questionnaire domain.Questionnaire) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Questionnaire, error)
}

type ContractRepository interface {
	Get(ctx context.Context) (*domain.ContractTemplate, error)
	Upsert(ctx context.Context, template domain.ContractTemplate) error
}

type ContactRepository interface {
	Create(ctx context.Context, message domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AuthRepository interface {
	CreateAdmin(ctx context.Context, admin domain.AdminUser) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetAdminByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	CountAdmins(ctx context.Context) (int, error)

	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
