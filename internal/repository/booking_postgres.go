package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"silwer/internal/domain"
)

type BookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{
		db: db,
	}
}

const bookingColumns = `id, client_name, client_email, client_phone, session_type,
	package_id, package_name, package_price, booking_date, booking_time, notes,
	selected_addons, addons_total, total_price, weekend_surcharge, status,
	payment_status, payment_method, amount_paid, contract_signed, contract_data,
	questionnaire_responses, manage_token, calendar_event_uid, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.ClientName,
		&b.ClientEmail,
		&b.ClientPhone,
		&b.SessionType,
		&b.PackageID,
		&b.PackageName,
		&b.PackagePrice,
		&b.BookingDate,
		&b.BookingTime,
		&b.Notes,
		&b.SelectedAddons,
		&b.AddonsTotal,
		&b.TotalPrice,
		&b.WeekendSurcharge,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&b.AmountPaid,
		&b.ContractSigned,
		&b.ContractData,
		&b.QuestionnaireResponses,
		&b.ManageToken,
		&b.CalendarEventUID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) Create(ctx context.Context, booking domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
		booking.SessionType,
		booking.PackageID,
		booking.PackageName,
		booking.PackagePrice,
		booking.BookingDate,
		booking.BookingTime,
		booking.Notes,
		booking.SelectedAddons,
		booking.AddonsTotal,
		booking.TotalPrice,
		booking.WeekendSurcharge,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.AmountPaid,
		booking.ContractSigned,
		booking.ContractData,
		booking.QuestionnaireResponses,
		booking.ManageToken,
		booking.CalendarEventUID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания брони: %w", err)
	}

	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения брони: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) Update(ctx context.Context, booking domain.Booking) error {
	query := `
		UPDATE bookings
		SET client_name = $1, client_email = $2, client_phone = $3, session_type = $4,
			package_id = $5, package_name = $6, package_price = $7,
			booking_date = $8, booking_time = $9, notes = $10,
			selected_addons = $11, addons_total = $12, total_price = $13,
			weekend_surcharge = $14, status = $15, payment_status = $16,
			payment_method = $17, amount_paid = $18, contract_signed = $19,
			contract_data = $20, questionnaire_responses = $21,
			calendar_event_uid = $22, updated_at = $23
		WHERE id = $24
	`

	tag, err := r.db.Exec(ctx, query,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
		booking.SessionType,
		booking.PackageID,
		booking.PackageName,
		booking.PackagePrice,
		booking.BookingDate,
		booking.BookingTime,
		booking.Notes,
		booking.SelectedAddons,
		booking.AddonsTotal,
		booking.TotalPrice,
		booking.WeekendSurcharge,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.AmountPaid,
		booking.ContractSigned,
		booking.ContractData,
		booking.QuestionnaireResponses,
		booking.CalendarEventUID,
		time.Now(),
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления брони: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления брони: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BookingRepo) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("booking_date >= $%d", argID))
		args = append(args, *filter.DateFrom)
		argID++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("booking_date <= $%d", argID))
		args = append(args, *filter.DateTo)
		argID++
	}
	if filter.SessionType != nil {
		conditions = append(conditions, fmt.Sprintf("session_type = $%d", argID))
		args = append(args, *filter.SessionType)
		argID++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM bookings " + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета броней: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+bookingColumns+" FROM bookings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		whereClause, argID, argID+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка броней: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования брони: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return bookings, total, nil
}

// FindByDate возвращает брони на дату, занимающие слот (все кроме отмененных).
func (r *BookingRepo) FindByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1 AND status != 'cancelled'
	`

	return r.queryBookings(ctx, query, date)
}

func (r *BookingRepo) FindByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date >= $1 AND booking_date <= $2 AND status != 'cancelled'
		ORDER BY booking_date, booking_time
	`

	return r.queryBookings(ctx, query, startDate, endDate)
}

func (r *BookingRepo) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения броней: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования брони: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return bookings, nil
}

func (r *BookingRepo) SetCalendarEventUID(ctx context.Context, id, uid string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE bookings SET calendar_event_uid = $1, updated_at = $2 WHERE id = $3",
		uid, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения UID события календаря: %w", err)
	}

	return nil
}

func (r *BookingRepo) CreateToken(ctx context.Context, token domain.BookingToken) error {
	query := `
		INSERT INTO booking_tokens (token, booking_id, expires_at, used)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, token.Token, token.BookingID, token.ExpiresAt, token.Used)
	if err != nil {
		return fmt.Errorf("ошибка создания токена брони: %w", err)
	}

	return nil
}

func (r *BookingRepo) GetToken(ctx context.Context, token string) (*domain.BookingToken, error) {
	query := `SELECT token, booking_id, expires_at, used FROM booking_tokens WHERE token = $1`

	var t domain.BookingToken
	err := r.db.QueryRow(ctx, query, token).Scan(&t.Token, &t.BookingID, &t.ExpiresAt, &t.Used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения токена брони: %w", err)
	}

	return &t, nil
}

func (r *BookingRepo) MarkTokenUsed(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, "UPDATE booking_tokens SET used = TRUE WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("ошибка обновления токена брони: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
