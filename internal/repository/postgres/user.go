package postgres

import (
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

type userRepository struct {
	repository.BaseRepository
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password, email, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at`

	user.ID = uuid.New()
	err := r.Conn(ctx).QueryRowContext(ctx, query,
		user.ID,
		user.Username,
		user.Password,
		user.Email,
		user.RoleID,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return repository.ErrEmailExists
			}
			return repository.ErrUsernameExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, "u.id = $1", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "u.username = $1", username)
}

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `
		SELECT u.id, u.username, u.password, u.email, u.role_id, u.deleted_at,
		       u.created_at, u.updated_at,
		       r.id, r.name, r.is_admin_group, r.created_at, r.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE ` + where + ` AND u.deleted_at IS NULL`

	user := &models.User{Role: &models.Role{}}
	var email sql.NullString
	var deletedAt sql.NullTime
	err := r.Conn(ctx).QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&email,
		&user.RoleID,
		&deletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Role.ID,
		&user.Role.Name,
		&user.Role.IsAdminGroup,
		&user.Role.CreatedAt,
		&user.Role.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if email.Valid {
		user.Email = &email.String
	}
	if deletedAt.Valid {
		user.DeletedAt = &deletedAt.Time
	}
	return user, nil
}
