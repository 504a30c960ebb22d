package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

func (r *SettingsRepo) GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	query := `
		SELECT id, time_slot_schedule, blocked_dates, max_bookings_per_slot,
			advance_booking_days, min_advance_hours, weekend_surcharge, updated_at
		FROM booking_settings
		WHERE id = 'default'
	`

	var s domain.BookingSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.TimeSlotSchedule,
		&s.BlockedDates,
		&s.MaxBookingsPerSlot,
		&s.AdvanceBookingDays,
		&s.MinAdvanceHours,
		&s.WeekendSurcharge,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения настроек бронирования: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error {
	query := `
		INSERT INTO booking_settings (id, time_slot_schedule, blocked_dates,
			max_bookings_per_slot, advance_booking_days, min_advance_hours,
			weekend_surcharge, updated_at)
		VALUES ('default', $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			time_slot_schedule = EXCLUDED.time_slot_schedule,
			blocked_dates = EXCLUDED.blocked_dates,
			max_bookings_per_slot = EXCLUDED.max_bookings_per_slot,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_advance_hours = EXCLUDED.min_advance_hours,
			weekend_surcharge = EXCLUDED.weekend_surcharge,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		settings.TimeSlotSchedule,
		settings.BlockedDates,
		settings.MaxBookingsPerSlot,
		settings.AdvanceBookingDays,
		settings.MinAdvanceHours,
		settings.WeekendSurcharge,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения настроек бронирования: %w", err)
	}

	return nil
}

func (r *SettingsRepo) GetCalendarSettings(ctx context.Context) (*domain.CalendarSettings, error) {
	query := `
		SELECT id, caldav_url, caldav_user, caldav_password, sync_enabled, booking_calendar
		FROM calendar_settings
		WHERE id = 'default'
	`

	var s domain.CalendarSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.CalDAVURL,
		&s.CalDAVUser,
		&s.CalDAVPassword,
		&s.SyncEnabled,
		&s.BookingCalendar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения настроек календаря: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) UpsertCalendarSettings(ctx context.Context, settings domain.CalendarSettings) error {
	query := `
		INSERT INTO calendar_settings (id, caldav_url, caldav_user, caldav_password,
			sync_enabled, booking_calendar)
		VALUES ('default', $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			caldav_url = EXCLUDED.caldav_url,
			caldav_user = EXCLUDED.caldav_user,
			caldav_password = EXCLUDED.caldav_password,
			sync_enabled = EXCLUDED.sync_enabled,
			booking_calendar = EXCLUDED.booking_calendar
	`

	_, err := r.db.Exec(ctx, query,
		settings.CalDAVURL,
		settings.CalDAVUser,
		settings.CalDAVPassword,
		settings.SyncEnabled,
		settings.BookingCalendar,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения настроек календаря: %w", err)
	}

	return nil
}

func (r *SettingsRepo) GetPaymentSettings(ctx context.Context) (*domain.PaymentSettings, error) {
	query := `
		SELECT id, bank_name, account_holder, account_number, branch_code,
			account_type, reference_format, payfast_enabled, payflex_enabled, updated_at
		FROM payment_settings
		WHERE id = 'default'
	`

	var s domain.PaymentSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.BankName,
		&s.AccountHolder,
		&s.AccountNumber,
		&s.BranchCode,
		&s.AccountType,
		&s.ReferenceFormat,
		&s.PayFastEnabled,
		&s.PayFlexEnabled,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения настроек оплаты: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepo) UpsertPaymentSettings(ctx context.Context, settings domain.PaymentSettings) error {
	query := `
		INSERT INTO payment_settings (id, bank_name, account_holder, account_number,
			branch_code, account_type, reference_format, payfast_enabled,
			payflex_enabled, updated_at)
		VALUES ('default', $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			account_holder = EXCLUDED.account_holder,
			account_number = EXCLUDED.account_number,
			branch_code = EXCLUDED.branch_code,
			account_type = EXCLUDED.account_type,
			reference_format = EXCLUDED.reference_format,
			payfast_enabled = EXCLUDED.payfast_enabled,
			payflex_enabled = EXCLUDED.payflex_enabled,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		settings.BankName,
		settings.AccountHolder,
		settings.AccountNumber,
		settings.BranchCode,
		settings.AccountType,
		settings.ReferenceFormat,
		settings.PayFastEnabled,
		settings.PayFlexEnabled,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения настроек оплаты: %w", err)
	}

	return nil
}
