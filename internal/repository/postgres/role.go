package postgres

import (
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type roleRepository struct {
	repository.BaseRepository
}

// NewRoleRepository creates a new PostgreSQL role repository
func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *roleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	return r.getOne(ctx, `SELECT id, name, is_admin_group, created_at, updated_at FROM roles WHERE id = $1`, id)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return r.getOne(ctx, `SELECT id, name, is_admin_group, created_at, updated_at FROM roles WHERE name = $1`, name)
}

func (r *roleRepository) getOne(ctx context.Context, query string, arg any) (*models.Role, error) {
	role := &models.Role{}
	err := r.Conn(ctx).QueryRowContext(ctx, query, arg).Scan(
		&role.ID,
		&role.Name,
		&role.IsAdminGroup,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}
