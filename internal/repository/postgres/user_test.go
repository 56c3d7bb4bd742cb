package postgres_test

import (
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/repository/postgres/integration"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	tc := integration.NewTestContext(t)

	userRole, err := tc.RoleRepo.GetByName(context.Background(), "user")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   models.User
		wantErr error
	}{
		{
			name: "Success",
			input: models.User{
				Username: "testuser",
				Password: "password123",
				Email:    &[]string{"test@example.com"}[0],
				RoleID:   userRole.ID,
			},
		},
		{
			name: "Duplicate Username",
			input: models.User{
				Username: "testuser",
				Password: "password123",
				Email:    &[]string{"test2@example.com"}[0],
				RoleID:   userRole.ID,
			},
			wantErr: repository.ErrUsernameExists,
		},
		{
			name: "Duplicate Email",
			input: models.User{
				Username: "testuser2",
				Password: "password123",
				Email:    &[]string{"test@example.com"}[0],
				RoleID:   userRole.ID,
			},
			wantErr: repository.ErrEmailExists,
		},
		{
			name: "Without Email",
			input: models.User{
				Username: "testuser3",
				Password: "password123",
				RoleID:   userRole.ID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tc.UserRepo.Create(context.Background(), &tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, tt.input.ID)
			require.False(t, tt.input.CreatedAt.IsZero())

			saved, err := tc.UserRepo.GetByID(context.Background(), tt.input.ID)
			require.NoError(t, err)
			require.Equal(t, tt.input.Username, saved.Username)
			require.Equal(t, tt.input.Email, saved.Email)
			require.Equal(t, tt.input.RoleID, saved.RoleID)
			require.NotNil(t, saved.Role)
			require.Equal(t, "user", saved.Role.Name)
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	tc := integration.NewTestContext(t)
	admin := tc.CreateTestUser("moderator", "mod@example.com", "password123", true)

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "Existing user", username: "moderator"},
		{name: "Unknown user", username: "nobody", wantErr: repository.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tc.UserRepo.GetByUsername(context.Background(), tt.username)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, admin.ID, user.ID)
			require.True(t, user.IsAdmin())
		})
	}
}

func TestUserRepository_SoftDeletedUsersAreHidden(t *testing.T) {
	tc := integration.NewTestContext(t)
	user := tc.CreateFakeUser(false)

	tc.ExecuteSQL("UPDATE users SET deleted_at = NOW() WHERE id = $1", user.ID)

	_, err := tc.UserRepo.GetByID(context.Background(), user.ID)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = tc.UserRepo.GetByUsername(context.Background(), user.Username)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}
