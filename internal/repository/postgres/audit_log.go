package postgres

import (
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type auditLogRepository struct {
	repository.BaseRepository
}

// NewAuditLogRepository creates a new PostgreSQL audit log repository
func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *auditLogRepository) Create(ctx context.Context, log *models.CreateAuditLogRequest) error {
	query := `
		INSERT INTO audit_logs (
			id, user_id, action, entity_type, entity_id,
			description, metadata, ip_address, user_agent,
			created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	metadata := log.Metadata
	if metadata == "" {
		metadata = "{}"
	}

	_, err := r.Conn(ctx).ExecContext(ctx, query,
		uuid.New(),
		log.UserID,
		log.Action,
		log.EntityType,
		log.EntityID,
		log.Description,
		metadata,
		log.IPAddress,
		log.UserAgent,
		time.Now(),
	)
	return err
}

func (r *auditLogRepository) buildListQuery(filter repository.AuditLogFilter) (string, []interface{}) {
	var conditions []string
	var params []interface{}
	paramCount := 1

	query := `
		SELECT id, user_id, action, entity_type, entity_id,
			   description, metadata, ip_address, user_agent,
			   created_at
		FROM audit_logs`

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramCount))
		params = append(params, *filter.UserID)
		paramCount++
	}

	if len(filter.Actions) > 0 {
		actions := make([]string, len(filter.Actions))
		for i, a := range filter.Actions {
			actions[i] = string(a)
		}
		conditions = append(conditions, fmt.Sprintf("action = ANY($%d)", paramCount))
		params = append(params, pq.Array(actions))
		paramCount++
	}

	if len(filter.EntityTypes) > 0 {
		conditions = append(conditions, fmt.Sprintf("entity_type = ANY($%d)", paramCount))
		params = append(params, pq.Array(filter.EntityTypes))
		paramCount++
	}

	if len(filter.EntityIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("entity_id = ANY($%d)", paramCount))
		params = append(params, pq.Array(filter.EntityIDs))
		paramCount++
	}

	if filter.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", paramCount))
		params = append(params, *filter.CreatedBefore)
		paramCount++
	}

	if filter.CreatedAfter != nil {
		conditions = append(conditions, fmt.Sprintf("created_at > $%d", paramCount))
		params = append(params, *filter.CreatedAfter)
		paramCount++
	}

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

	return query, params
}

func (r *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	query, params := r.buildListQuery(filter)

	rows, err := r.Conn(ctx).QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.AuditLog, 0)
	for rows.Next() {
		var log models.AuditLog
		var userID uuid.NullUUID
		err := rows.Scan(
			&log.ID,
			&userID,
			&log.Action,
			&log.EntityType,
			&log.EntityID,
			&log.Description,
			&log.Metadata,
			&log.IPAddress,
			&log.UserAgent,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if userID.Valid {
			log.UserID = &userID.UUID
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
