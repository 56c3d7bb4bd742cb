package postgres

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type bookingRepository struct {
	repository.BaseRepository
}

// NewBookingRepository creates a new PostgreSQL banner booking repository
func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const bookingColumns = `id, zone_id, position, format, start_date, end_date, duration_days,
	price_usd, image_url, click_url, status, requested_by, reviewed_by, reviewed_at,
	admin_notes, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	var (
		clickURL   sql.NullString
		reviewedBy uuid.NullUUID
		reviewedAt sql.NullTime
		notes      sql.NullString
	)
	err := row.Scan(
		&b.ID,
		&b.ZoneID,
		&b.Position,
		&b.Format,
		&b.StartDate,
		&b.EndDate,
		&b.DurationDays,
		&b.PriceUSD,
		&b.ImageURL,
		&clickURL,
		&b.Status,
		&b.RequestedBy,
		&reviewedBy,
		&reviewedAt,
		&notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.StartDate = banner.Day(b.StartDate)
	b.EndDate = banner.Day(b.EndDate)
	if clickURL.Valid {
		b.ClickURL = &clickURL.String
	}
	if reviewedBy.Valid {
		b.ReviewedBy = &reviewedBy.UUID
	}
	if reviewedAt.Valid {
		b.ReviewedAt = &reviewedAt.Time
	}
	if notes.Valid {
		b.AdminNotes = &notes.String
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO banner_bookings (
			id, zone_id, position, format, start_date, end_date, duration_days,
			price_usd, image_url, click_url, status, requested_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13
		)
		RETURNING created_at, updated_at`

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	err := r.Conn(ctx).QueryRowContext(ctx, query,
		b.ID,
		b.ZoneID,
		b.Position,
		b.Format,
		b.StartDate.Format(banner.DateLayout),
		b.EndDate.Format(banner.DateLayout),
		b.DurationDays,
		b.PriceUSD,
		b.ImageURL,
		b.ClickURL,
		b.Status,
		b.RequestedBy,
		time.Now(),
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return mapWriteError(err)
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.get(ctx, `SELECT `+bookingColumns+` FROM banner_bookings WHERE id = $1`, id)
}

func (r *bookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if !repository.InTransaction(ctx) {
		return nil, errors.New("GetForUpdate requires a transaction")
	}
	return r.get(ctx, `SELECT `+bookingColumns+` FROM banner_bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *bookingRepository) get(ctx context.Context, query string, id uuid.UUID) (*models.Booking, error) {
	b, err := scanBooking(r.Conn(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *models.Booking) error {
	query := `
		UPDATE banner_bookings
		SET start_date = $1,
			end_date = $2,
			duration_days = $3,
			price_usd = $4,
			status = $5,
			reviewed_by = $6,
			reviewed_at = $7,
			admin_notes = $8,
			updated_at = $9
		WHERE id = $10
		RETURNING updated_at`

	err := r.Conn(ctx).QueryRowContext(ctx, query,
		b.StartDate.Format(banner.DateLayout),
		b.EndDate.Format(banner.DateLayout),
		b.DurationDays,
		b.PriceUSD,
		b.Status,
		b.ReviewedBy,
		b.ReviewedAt,
		b.AdminNotes,
		time.Now(),
		b.ID,
	).Scan(&b.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrBookingNotFound
	}
	return mapWriteError(err)
}

func (r *bookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	var conditions []string
	var params []interface{}
	paramCount := 1

	if len(filter.Statuses) > 0 {
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", paramCount))
		params = append(params, pq.Array(banner.StatusStrings(filter.Statuses)))
		paramCount++
	}
	if filter.ZoneID != nil {
		conditions = append(conditions, fmt.Sprintf("zone_id = $%d", paramCount))
		params = append(params, *filter.ZoneID)
		paramCount++
	}
	if filter.Position != nil {
		conditions = append(conditions, fmt.Sprintf("position = $%d", paramCount))
		params = append(params, *filter.Position)
		paramCount++
	}
	if filter.RequestedBy != nil {
		conditions = append(conditions, fmt.Sprintf("requested_by = $%d", paramCount))
		params = append(params, *filter.RequestedBy)
		paramCount++
	}

	query := `SELECT ` + bookingColumns + ` FROM banner_bookings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", paramCount)
		params = append(params, *filter.Limit)
		paramCount++
	}
	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", paramCount)
		params = append(params, *filter.Offset)
	}

	return r.queryBookings(ctx, query, params...)
}

func (r *bookingRepository) LockSlot(ctx context.Context, zoneID uuid.UUID, position banner.Position) error {
	if !repository.InTransaction(ctx) {
		return errors.New("LockSlot requires a transaction")
	}
	_, err := r.Conn(ctx).ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`,
		zoneID.String()+":"+string(position),
	)
	return err
}

func (r *bookingRepository) HasOverlap(ctx context.Context, zoneID uuid.UUID, position banner.Position, dr banner.DateRange, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM banner_bookings
			WHERE zone_id = $1
			  AND position = $2
			  AND status = ANY($3)
			  AND start_date <= $5
			  AND end_date >= $4
			  AND ($6::uuid IS NULL OR id <> $6)
		)`

	var exists bool
	err := r.Conn(ctx).QueryRowContext(ctx, query,
		zoneID,
		position,
		pq.Array(banner.StatusStrings(banner.OccupyingStatuses)),
		dr.Start.Format(banner.DateLayout),
		dr.End.Format(banner.DateLayout),
		excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *bookingRepository) Occupancy(ctx context.Context, filter repository.OccupancyFilter) ([]banner.Occupancy, error) {
	statuses := banner.StatusStrings(banner.OccupyingStatuses)
	if filter.IncludePending {
		statuses = append(statuses, string(banner.StatusPending))
	}

	query := `
		SELECT b.id, b.start_date, b.end_date, u.username, b.status
		FROM banner_bookings b
		JOIN users u ON u.id = b.requested_by
		WHERE b.zone_id = $1 AND b.position = $2 AND b.status = ANY($3)`
	params := []interface{}{filter.ZoneID, filter.Position, pq.Array(statuses)}

	if filter.From != nil {
		params = append(params, filter.From.Format(banner.DateLayout))
		query += fmt.Sprintf(" AND b.end_date >= $%d", len(params))
	}
	if filter.To != nil {
		params = append(params, filter.To.Format(banner.DateLayout))
		query += fmt.Sprintf(" AND b.start_date <= $%d", len(params))
	}
	query += " ORDER BY b.start_date ASC, b.created_at ASC"

	rows, err := r.Conn(ctx).QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]banner.Occupancy, 0)
	for rows.Next() {
		var e banner.Occupancy
		if err := rows.Scan(&e.BookingID, &e.StartDate, &e.EndDate, &e.RequesterUsername, &e.Status); err != nil {
			return nil, err
		}
		e.StartDate = banner.Day(e.StartDate)
		e.EndDate = banner.Day(e.EndDate)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *bookingRepository) ActivateDue(ctx context.Context, today time.Time) ([]models.Booking, error) {
	query := `
		UPDATE banner_bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND start_date <= $3
		RETURNING ` + bookingColumns
	return r.queryBookings(ctx, query, banner.StatusActive, banner.StatusApproved, today.Format(banner.DateLayout))
}

func (r *bookingRepository) ExpireDue(ctx context.Context, today time.Time) ([]models.Booking, error) {
	query := `
		UPDATE banner_bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_date < $3
		RETURNING ` + bookingColumns
	return r.queryBookings(ctx, query, banner.StatusExpired, banner.StatusActive, today.Format(banner.DateLayout))
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// mapWriteError translates constraint violations raised by booking writes
func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isExclusionViolation(err):
		return repository.ErrOverlap
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	default:
		return err
	}
}
