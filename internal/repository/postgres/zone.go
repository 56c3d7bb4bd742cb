package postgres

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type zoneRepository struct {
	repository.BaseRepository
}

// NewZoneRepository creates a new PostgreSQL ad zone repository
func NewZoneRepository(db *sql.DB) repository.ZoneRepository {
	return &zoneRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const zoneColumns = `id, name, zone_type, country_id, region_id, is_active, created_at, updated_at`

func scanZone(row interface{ Scan(...any) error }) (*models.Zone, error) {
	zone := &models.Zone{}
	var regionID uuid.NullUUID
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.ZoneType,
		&zone.CountryID,
		&regionID,
		&zone.IsActive,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if regionID.Valid {
		zone.RegionID = &regionID.UUID
	}
	return zone, nil
}

func (r *zoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO ad_zones (id, name, zone_type, country_id, region_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING created_at, updated_at`

	zone.ID = uuid.New()
	err := r.Conn(ctx).QueryRowContext(ctx, query,
		zone.ID,
		zone.Name,
		zone.ZoneType,
		zone.CountryID,
		zone.RegionID,
		zone.IsActive,
		time.Now(),
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrZoneExists
		}
		return err
	}
	return nil
}

func (r *zoneRepository) Update(ctx context.Context, zone *models.Zone) error {
	query := `
		UPDATE ad_zones
		SET name = $1, is_active = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + zoneColumns

	updated, err := scanZone(r.Conn(ctx).QueryRowContext(ctx, query,
		zone.Name,
		zone.IsActive,
		time.Now(),
		zone.ID,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return repository.ErrZoneNotFound
		}
		if isUniqueViolation(err) {
			return repository.ErrZoneExists
		}
		return err
	}
	*zone = *updated
	return nil
}

func (r *zoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var count int
	err := r.Conn(ctx).QueryRowContext(ctx,
		"SELECT COUNT(*) FROM banner_bookings WHERE zone_id = $1",
		id,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrHasAssociatedRecords
	}

	result, err := r.Conn(ctx).ExecContext(ctx, `DELETE FROM ad_zones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrHasAssociatedRecords
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrZoneNotFound
	}
	return nil
}

func (r *zoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM ad_zones WHERE id = $1`

	zone, err := scanZone(r.Conn(ctx).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (r *zoneRepository) Resolve(ctx context.Context, zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) (*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM ad_zones
		WHERE zone_type = $1 AND country_id = $2 AND is_active`
	args := []any{zoneType, countryID}

	if zoneType.RequiresRegion() {
		if regionID == nil {
			return nil, repository.ErrZoneNotFound
		}
		query += " AND region_id = $3"
		args = append(args, *regionID)
	} else {
		query += " AND region_id IS NULL"
	}

	zone, err := scanZone(r.Conn(ctx).QueryRowContext(ctx, query+" LIMIT 1", args...))
	if err == sql.ErrNoRows {
		return nil, repository.ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (r *zoneRepository) List(ctx context.Context, filter repository.ZoneFilter) ([]models.Zone, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Search+"%")
		argCount++
	}
	if filter.ZoneType != nil {
		conditions = append(conditions, fmt.Sprintf("zone_type = $%d", argCount))
		args = append(args, *filter.ZoneType)
		argCount++
	}
	if filter.CountryID != nil {
		conditions = append(conditions, fmt.Sprintf("country_id = $%d", argCount))
		args = append(args, *filter.CountryID)
		argCount++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *filter.Active)
		argCount++
	}

	query := `SELECT ` + zoneColumns + ` FROM ad_zones`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, *filter.Limit)
		argCount++
	}
	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, *filter.Offset)
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]models.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *zone)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return zones, nil
}
