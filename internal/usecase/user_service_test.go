package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

type userFixture struct {
	userRepo     *MockUserRepository
	orgRepo      *MockOrganizationRepository
	activityRepo *MockActivityRepository
	service      *usecase.UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:     new(MockUserRepository),
		orgRepo:      new(MockOrganizationRepository),
		activityRepo: new(MockActivityRepository),
	}
	logger := zap.NewNop()
	maturity := usecase.NewMaturityService(f.userRepo, f.activityRepo, logger)
	f.service = usecase.NewUserService(f.userRepo, f.orgRepo, f.activityRepo, maturity, passthroughTx{}, logger)
	return f
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the first organization", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
		f.orgRepo.On("GetByID", mock.Anything, uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = 7 }).
			Return(nil)

		resp, err := f.service.Create(ctx, &dto.CreateUserRequest{
			GithubUsername: "alice",
			IsActive:       boolPtr(true),
			MaturityLevel:  intPtr(2),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, uint(1), resp.OrganizationID)
		assert.Equal(t, "alice", resp.Name)
		assert.True(t, resp.CopilotEnabled)
		assert.True(t, resp.IsActive)
		assert.NotNil(t, resp.CopilotEnabledDate)
		assert.True(t, resp.IsWeeklyActive)
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", mock.Anything, "alice").Return(&model.User{ID: 1}, nil)

		_, err := f.service.Create(ctx, &dto.CreateUserRequest{GithubUsername: "alice"})
		assert.ErrorIs(t, err, domainErrors.ErrDuplicateUser)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing organization", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
		f.orgRepo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

		_, err := f.service.Create(ctx, &dto.CreateUserRequest{GithubUsername: "alice", OrganizationID: uintPtr(9)})
		assert.ErrorIs(t, err, domainErrors.ErrOrganizationRequired)
	})

	t.Run("invalid maturity level", func(t *testing.T) {
		f := newUserFixture()
		_, err := f.service.Create(ctx, &dto.CreateUserRequest{GithubUsername: "alice", MaturityLevel: intPtr(6)})
		assert.ErrorIs(t, err, domainErrors.ErrInvalidMaturityLevel)
	})

	t.Run("level follows enablement", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, nil)
		f.orgRepo.On("GetByID", mock.Anything, uint(1)).Return(&model.Organization{ID: 1}, nil)
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		disabled, err := f.service.Create(ctx, &dto.CreateUserRequest{
			GithubUsername: "carol",
			CopilotEnabled: boolPtr(false),
			MaturityLevel:  intPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, disabled.MaturityLevel)

		enabled, err := f.service.Create(ctx, &dto.CreateUserRequest{GithubUsername: "dave", CopilotEnabled: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, 1, enabled.MaturityLevel)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rename onto an existing username", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, GithubUsername: "alice"}, nil)
		f.userRepo.On("GetByUsername", mock.Anything, "bob").Return(&model.User{ID: 2}, nil)

		_, err := f.service.Update(ctx, 1, &dto.UpdateUserRequest{GithubUsername: strPtr("bob")})
		assert.ErrorIs(t, err, domainErrors.ErrDuplicateUser)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		f := newUserFixture()
		user := &model.User{ID: 1, GithubUsername: "alice", Team: "core", Email: "a@x.io"}
		f.userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
		f.userRepo.On("Update", mock.Anything, user).Return(nil)

		resp, err := f.service.Update(ctx, 1, &dto.UpdateUserRequest{Team: strPtr("platform")})
		require.NoError(t, err)
		assert.Equal(t, "platform", resp.Team)
		assert.Equal(t, "a@x.io", resp.Email)
	})

	t.Run("disabling resets the level", func(t *testing.T) {
		f := newUserFixture()
		user := &model.User{ID: 2, GithubUsername: "dave", CopilotEnabled: true, MaturityLevel: 4}
		f.userRepo.On("GetByID", mock.Anything, uint(2)).Return(user, nil)
		f.userRepo.On("Update", mock.Anything, user).Return(nil)

		resp, err := f.service.Update(ctx, 2, &dto.UpdateUserRequest{CopilotEnabled: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, resp.CopilotEnabled)
		assert.Equal(t, 0, resp.MaturityLevel)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByID", mock.Anything, uint(5)).Return(nil, nil)

		_, err := f.service.Update(ctx, 5, &dto.UpdateUserRequest{})
		assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	f := newUserFixture()
	f.userRepo.On("GetByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, GithubUsername: "carol"}, nil)
	f.activityRepo.On("DeleteForUser", mock.Anything, uint(3)).Return(nil)
	f.userRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), 3))
	f.activityRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
}

func TestUserService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.userRepo.On("TeamStats", mock.Anything, (*uint)(nil)).Return([]entity.TeamStat{
		{Team: "core", Total: 3, AvgMaturity: 2.6666},
		{Team: entity.UnassignedTeam, Total: 1, AvgMaturity: 1},
	}, nil)
	f.userRepo.On("CountByMaturity", mock.Anything, (*uint)(nil)).Return(map[int]int64{1: 2, 3: 1}, nil)

	teams, err := f.service.TeamStats(ctx, nil)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, 2.7, teams[0].AvgMaturity)
	assert.Equal(t, "Unassigned", teams[1].Team)

	levels, err := f.service.MaturityStats(ctx, nil)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "L1 - Enabled", levels[0].Name)
	assert.Equal(t, int64(2), levels[0].Count)
	assert.Equal(t, 3, levels[1].Level)
}

func TestUserService_RecordActivity(t *testing.T) {
	ctx := context.Background()
	req := &dto.ActivityRequest{Date: "2024-03-01", SuggestionsShown: 10, SuggestionsAccepted: 4}

	t.Run("creates a row and reclassifies", func(t *testing.T) {
		f := newUserFixture()
		user := &model.User{ID: 1, GithubUsername: "alice", CopilotEnabled: true, MaturityLevel: 1}
		f.userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
		f.activityRepo.On("GetByUserAndDate", mock.Anything, uint(1), day("2024-03-01")).Return(nil, nil)
		f.activityRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserActivityLog")).Return(nil)
		f.activityRepo.On("ListForUser", mock.Anything, uint(1), mock.Anything).Return([]*model.UserActivityLog{}, nil)

		resp, created, err := f.service.RecordActivity(ctx, 1, req)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "2024-03-01", resp.Date)
		assert.Equal(t, 40.0, resp.AcceptanceRate)
		f.userRepo.AssertNotCalled(t, "UpdateMaturity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replaces an existing row", func(t *testing.T) {
		f := newUserFixture()
		user := &model.User{ID: 1, GithubUsername: "alice", CopilotEnabled: true, MaturityLevel: 1}
		existing := &model.UserActivityLog{ID: 9, UserID: 1, Date: day("2024-03-01"), CommitsCount: 5}
		f.userRepo.On("GetByID", mock.Anything, uint(1)).Return(user, nil)
		f.activityRepo.On("GetByUserAndDate", mock.Anything, uint(1), day("2024-03-01")).Return(existing, nil)
		f.activityRepo.On("Update", mock.Anything, existing).Return(nil)
		f.activityRepo.On("ListForUser", mock.Anything, uint(1), mock.Anything).Return([]*model.UserActivityLog{}, nil)

		resp, created, err := f.service.RecordActivity(ctx, 1, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, 0, resp.CommitsCount)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newUserFixture()
		_, _, err := f.service.RecordActivity(ctx, 1, &dto.ActivityRequest{Date: "03/01/2024"})
		assert.ErrorIs(t, err, domainErrors.ErrInvalidDate)
	})
}

func TestUserService_RecomputeMaturity_UnknownOrganization(t *testing.T) {
	f := newUserFixture()
	f.orgRepo.On("GetByID", mock.Anything, uint(4)).Return(nil, nil)

	_, err := f.service.RecomputeMaturity(context.Background(), uintPtr(4))
	assert.ErrorIs(t, err, domainErrors.ErrOrganizationNotFound)
}
