package postgres_test

import (
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/repository/postgres/integration"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_Create(t *testing.T) {
	tc := integration.NewTestContext(t)
	ctx := context.Background()
	user := tc.CreateFakeUser(true)

	tests := []struct {
		name  string
		input models.CreateAuditLogRequest
	}{
		{
			name: "With user and metadata",
			input: models.CreateAuditLogRequest{
				UserID:      &user.ID,
				Action:      models.AuditActionApprove,
				EntityType:  "booking",
				EntityID:    uuid.NewString(),
				Description: "banner booking approved",
				Metadata:    `{"position":"header"}`,
				IPAddress:   "127.0.0.1",
				UserAgent:   "test-agent",
			},
		},
		{
			name: "Scheduled job without user",
			input: models.CreateAuditLogRequest{
				Action:      models.AuditActionAdvance,
				EntityType:  "booking",
				EntityID:    "2024-03-08",
				Description: "scheduled booking transitions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tc.AuditRepo.Create(ctx, &tt.input))

			logs, err := tc.AuditRepo.List(ctx, repository.AuditLogFilter{EntityIDs: []string{tt.input.EntityID}})
			require.NoError(t, err)
			require.Len(t, logs, 1)
			require.Equal(t, tt.input.Action, logs[0].Action)
			require.Equal(t, tt.input.UserID, logs[0].UserID)
			require.True(t, json.Valid([]byte(logs[0].Metadata)))
		})
	}
}

func TestAuditLogRepository_List(t *testing.T) {
	tc := integration.NewTestContext(t)
	ctx := context.Background()
	admin := tc.CreateFakeUser(true)
	other := tc.CreateFakeUser(false)

	bookingID := uuid.NewString()
	tc.CreateTestAuditLog(&admin.ID, models.AuditActionApprove, "booking", bookingID, "approved")
	tc.CreateTestAuditLog(&admin.ID, models.AuditActionUpdate, "booking", bookingID, "edited")
	tc.CreateTestAuditLog(&other.ID, models.AuditActionCancel, "booking", uuid.NewString(), "cancelled")
	tc.CreateTestAuditLog(&admin.ID, models.AuditActionCreate, "zone", uuid.NewString(), "zone created")

	hourAgo := time.Now().Add(-time.Hour)
	limit := 2

	tests := []struct {
		name   string
		filter repository.AuditLogFilter
		want   int
	}{
		{"All", repository.AuditLogFilter{}, 4},
		{"By user", repository.AuditLogFilter{UserID: &admin.ID}, 3},
		{"By action", repository.AuditLogFilter{Actions: []models.AuditAction{models.AuditActionApprove, models.AuditActionCancel}}, 2},
		{"By entity type", repository.AuditLogFilter{EntityTypes: []string{"zone"}}, 1},
		{"By entity", repository.AuditLogFilter{EntityIDs: []string{bookingID}}, 2},
		{"Created after", repository.AuditLogFilter{CreatedAfter: &hourAgo}, 4},
		{"Created before", repository.AuditLogFilter{CreatedBefore: &hourAgo}, 0},
		{"With limit", repository.AuditLogFilter{Limit: &limit}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := tc.AuditRepo.List(ctx, tt.filter)
			require.NoError(t, err)
			require.Len(t, logs, tt.want)
		})
	}
}
