package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

func activityOn(userID uint, daysAgo int, shown, accepted int) *model.UserActivityLog {
	return &model.UserActivityLog{
		UserID:              userID,
		Date:                entity.Day(time.Now()).AddDate(0, 0, -daysAgo),
		SuggestionsShown:    shown,
		SuggestionsAccepted: accepted,
	}
}

func TestMaturityService_Recompute(t *testing.T) {
	ctx := context.Background()
	orgID := uintPtr(1)

	userRepo := new(MockUserRepository)
	activityRepo := new(MockActivityRepository)

	users := []*model.User{
		{ID: 1, GithubUsername: "disabled", CopilotEnabled: false, MaturityLevel: 0},
		{ID: 2, GithubUsername: "idle", CopilotEnabled: true, MaturityLevel: 1},
		{ID: 3, GithubUsername: "busy", CopilotEnabled: true, MaturityLevel: 1},
		{ID: 4, GithubUsername: "value", CopilotEnabled: true, MaturityLevel: 2},
	}

	var logs []*model.UserActivityLog
	for i := 0; i < 6; i++ {
		logs = append(logs, activityOn(3, i+10, 10, 1))
	}
	for i := 0; i < 16; i++ {
		logs = append(logs, activityOn(4, i, 10, 4))
	}

	userRepo.On("List", mock.Anything, entity.UserFilter{OrganizationID: orgID}).Return(users, nil)
	activityRepo.On("ListForOrganization", mock.Anything, orgID, mock.Anything).Return(logs, nil)

	updates := map[uint]entity.MaturityUpdate{}
	userRepo.On("UpdateMaturity", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updates[args.Get(1).(uint)] = args.Get(2).(entity.MaturityUpdate)
		}).
		Return(nil)
	userRepo.On("CountByMaturity", mock.Anything, orgID).Return(map[int]int64{0: 1, 1: 1, 3: 1, 5: 1}, nil)

	service := usecase.NewMaturityService(userRepo, activityRepo, zap.NewNop())
	resp, err := service.Recompute(ctx, orgID)
	require.NoError(t, err)

	// disabled and idle already match their classification
	assert.Equal(t, 2, resp.UsersUpdated)
	assert.Len(t, updates, 2)

	assert.Equal(t, entity.LevelWorking, updates[3].Level)
	assert.False(t, updates[3].IsWeeklyActive)
	assert.True(t, updates[3].IsMonthlyActive)

	assert.Equal(t, entity.LevelValue, updates[4].Level)
	assert.True(t, updates[4].IsWeeklyActive)
	require.NotNil(t, updates[4].LastActivity)
	assert.True(t, updates[4].LastActivity.Equal(entity.Day(time.Now())))

	assert.Equal(t, map[string]int64{"L0": 1, "L1": 1, "L2": 0, "L3": 1, "L4": 0, "L5": 1}, resp.Distribution)
}
