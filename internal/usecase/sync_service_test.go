package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
	apperrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/errors"
)

type syncFixture struct {
	source      *MockCopilotDataSource
	factory     *staticFactory
	orgRepo     *MockOrganizationRepository
	userRepo    *MockUserRepository
	metricsRepo *MockMetricsRepository
	service     *usecase.SyncService
}

func newSyncFixture(config usecase.SyncConfig) *syncFixture {
	logger := zap.NewNop()
	f := &syncFixture{
		source:      new(MockCopilotDataSource),
		orgRepo:     new(MockOrganizationRepository),
		userRepo:    new(MockUserRepository),
		metricsRepo: new(MockMetricsRepository),
	}
	f.factory = &staticFactory{source: f.source}
	activityRepo := new(MockActivityRepository)
	activityRepo.On("ListForOrganization", mock.Anything, mock.Anything, mock.Anything).Return([]*model.UserActivityLog{}, nil)

	maturity := usecase.NewMaturityService(f.userRepo, activityRepo, logger)
	f.service = usecase.NewSyncService(
		f.factory, f.orgRepo, f.userRepo, f.metricsRepo, maturity,
		passthroughTx{}, nil, config, logger,
	)
	return f
}

// expectNewOrg makes the organization lookup miss and assigns id 1 on create.
func (f *syncFixture) expectNewOrg(login string) {
	f.orgRepo.On("GetByGithubOrg", mock.Anything, login).Return(nil, nil)
	f.orgRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Organization")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Organization).ID = 1
		}).
		Return(nil)
}

func (f *syncFixture) expectRecompute() {
	f.userRepo.On("List", mock.Anything, mock.Anything).Return([]*model.User{}, nil)
	f.userRepo.On("CountByMaturity", mock.Anything, mock.Anything).Return(map[int]int64{0: 1, 1: 1}, nil)
}

func boolPtr(v bool) *bool {
	return &v
}

func TestSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("usage failure is absorbed as a warning", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("GetBilling", mock.Anything, "acme").Return(&provider.Billing{TotalSeats: 10, ActiveThisCycle: 7}, nil)
		f.expectNewOrg("acme")
		f.source.On("ListMembers", mock.Anything, "acme").Return([]provider.Member{{Login: "alice"}, {Login: "bob"}}, nil)
		f.source.On("ListSeats", mock.Anything, "acme").Return([]provider.Seat{{Login: "Alice"}}, nil)
		f.source.On("GetUsage", mock.Anything, "acme", mock.Anything, mock.Anything).Return(nil, errors.New("403 Forbidden"))

		f.userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
		f.userRepo.On("GetByUsername", mock.Anything, "bob").Return(&model.User{
			ID: 7, GithubUsername: "bob", OrganizationID: 1, CopilotEnabled: true, MaturityLevel: 3,
		}, nil)

		var created *model.User
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*model.User) }).
			Return(nil)
		var updated *model.User
		f.userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) { updated = args.Get(1).(*model.User) }).
			Return(nil)
		f.expectRecompute()

		resp, err := f.service.Sync(ctx, &dto.SyncRequest{Token: "ghp_test", Org: "acme"})
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "Acme", resp.OrgName)
		assert.Equal(t, 2, resp.UsersSynced)
		assert.Equal(t, 0, resp.MetricsSynced)
		assert.NotEmpty(t, resp.SyncID)
		require.Len(t, resp.Warnings, 1)
		assert.Contains(t, resp.Warnings[0], "usage")
		assert.Equal(t, int64(1), resp.MaturityDistribution["L1"])
		assert.Equal(t, []string{"ghp_test"}, f.factory.tokens)

		require.NotNil(t, created)
		assert.True(t, created.CopilotEnabled)
		assert.Equal(t, 1, created.MaturityLevel)
		assert.Equal(t, "alice@acme.com", created.Email)
		assert.Equal(t, "Unassigned", created.Team)
		assert.NotNil(t, created.CopilotEnabledDate)

		require.NotNil(t, updated)
		assert.False(t, updated.CopilotEnabled)
		assert.Equal(t, 0, updated.MaturityLevel)

		f.metricsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.source.AssertExpectations(t)
	})

	t.Run("members of another organization are not moved", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("GetBilling", mock.Anything, "other").Return(&provider.Billing{TotalSeats: 5}, nil)
		f.expectNewOrg("other")
		f.source.On("ListMembers", mock.Anything, "other").Return([]provider.Member{{Login: "alice"}, {Login: "frank"}}, nil)
		f.source.On("ListSeats", mock.Anything, "other").Return([]provider.Seat{{Login: "alice"}, {Login: "frank"}}, nil)

		alice := &model.User{ID: 3, GithubUsername: "alice", OrganizationID: 2, CopilotEnabled: true, MaturityLevel: 4}
		f.userRepo.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
		f.userRepo.On("GetByUsername", mock.Anything, "frank").Return(nil, nil)
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		f.expectRecompute()

		resp, err := f.service.Sync(ctx, &dto.SyncRequest{Token: "ghp_test", Org: "other", SyncMetrics: boolPtr(false)})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.UsersSynced)
		require.Len(t, resp.Warnings, 1)
		assert.Contains(t, resp.Warnings[0], "another organization")
		assert.Contains(t, resp.Warnings[0], "alice")
		assert.Equal(t, "Sync completed with warnings", resp.Message)

		assert.Equal(t, uint(2), alice.OrganizationID)
		assert.Equal(t, 4, alice.MaturityLevel)
		f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("member listing failure fails the sync", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("GetBilling", mock.Anything, "acme").Return(&provider.Billing{}, nil)
		f.expectNewOrg("acme")
		f.source.On("ListMembers", mock.Anything, "acme").Return(nil, errors.New("401 Bad credentials"))

		resp, err := f.service.Sync(ctx, &dto.SyncRequest{Token: "bad", Org: "acme"})

		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrUpstreamFailed, apperrors.CodeOf(err))
		assert.Equal(t, 400, apperrors.ToHTTPError(err).Code)
		assert.Contains(t, err.Error(), "Bad credentials")
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("usage days upsert usage columns only", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("GetBilling", mock.Anything, "acme").Return(&provider.Billing{TotalSeats: 3}, nil)
		f.expectNewOrg("acme")
		f.source.On("GetUsage", mock.Anything, "acme", mock.Anything, mock.Anything).Return([]provider.UsageDay{
			{
				Day:                   day("2024-03-01"),
				TotalSuggestionsCount: 200,
				TotalAcceptancesCount: 50,
				TotalActiveUsers:      4,
				Breakdown: []provider.UsageBreakdown{
					{Language: "go", Editor: "vscode", AcceptancesCount: 30},
					{Language: "python", Editor: "vscode", AcceptancesCount: 20},
				},
			},
			{Day: day("2024-03-02"), TotalSuggestionsCount: 10, TotalAcceptancesCount: 5},
		}, nil)

		existing := &model.DailyMetrics{ID: 9, OrganizationID: 1, Date: day("2024-03-02"), TotalCommits: 12}
		f.metricsRepo.On("GetByOrgAndDate", mock.Anything, uint(1), day("2024-03-01")).Return(nil, nil)
		f.metricsRepo.On("GetByOrgAndDate", mock.Anything, uint(1), day("2024-03-02")).Return(existing, nil)

		var created *model.DailyMetrics
		f.metricsRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.DailyMetrics")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*model.DailyMetrics) }).
			Return(nil)
		f.metricsRepo.On("Update", mock.Anything, existing).Return(nil)
		f.expectRecompute()

		resp, err := f.service.Sync(ctx, &dto.SyncRequest{
			Token:     "ghp_test",
			Org:       "acme",
			SyncUsers: boolPtr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.MetricsSynced)
		assert.Equal(t, 0, resp.UsersSynced)
		assert.Empty(t, resp.Warnings)
		assert.Equal(t, "Sync completed successfully", resp.Message)

		require.NotNil(t, created)
		assert.Equal(t, 25.0, created.AcceptanceRate)
		assert.Equal(t, 4, created.ActiveUsers)
		assert.Equal(t, map[string]int{"go": 30, "python": 20}, created.LanguageBreakdown.Data())
		assert.Equal(t, map[string]int{"vscode": 50}, created.EditorBreakdown.Data())

		assert.Equal(t, 12, existing.TotalCommits)
		assert.Equal(t, 50.0, existing.AcceptanceRate)

		f.source.AssertNotCalled(t, "ListMembers", mock.Anything, mock.Anything)
		f.metricsRepo.AssertExpectations(t)
	})

	t.Run("billing failure keeps stored seat counts", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{EmailDomain: "example.com"})
		f.source.On("GetBilling", mock.Anything, "acme").Return(nil, errors.New("404 Not Found"))
		f.orgRepo.On("GetByGithubOrg", mock.Anything, "acme").Return(&model.Organization{
			ID: 1, GithubOrg: "acme", Name: "ACME Corp", TotalSeats: 40, CopilotSeats: 30,
		}, nil)
		f.source.On("ListMembers", mock.Anything, "acme").Return([]provider.Member{{Login: "carol"}}, nil)
		f.source.On("ListSeats", mock.Anything, "acme").Return(nil, errors.New("403"))
		f.userRepo.On("GetByUsername", mock.Anything, "carol").Return(nil, nil)

		var created *model.User
		f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*model.User) }).
			Return(nil)
		f.expectRecompute()

		resp, err := f.service.Sync(ctx, &dto.SyncRequest{
			Token:       "ghp_test",
			Org:         "acme",
			SyncMetrics: boolPtr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, "ACME Corp", resp.OrgName)
		assert.Len(t, resp.Warnings, 2)
		assert.Equal(t, "Sync completed with warnings", resp.Message)
		f.orgRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

		require.NotNil(t, created)
		assert.Equal(t, "carol@example.com", created.Email)
		assert.False(t, created.CopilotEnabled)
		assert.Equal(t, 0, created.MaturityLevel)
	})
}

func TestSyncService_TestConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("reports member count", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("ListMembers", mock.Anything, "acme").Return([]provider.Member{{Login: "a"}, {Login: "b"}}, nil)

		resp, err := f.service.TestConnection(ctx, "ghp_test", "acme")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.MembersCount)
		assert.Equal(t, "Successfully connected to acme", resp.Message)
	})

	t.Run("upstream failure is a client error", func(t *testing.T) {
		f := newSyncFixture(usecase.SyncConfig{})
		f.source.On("ListMembers", mock.Anything, "acme").Return(nil, errors.New("404 Not Found"))

		_, err := f.service.TestConnection(ctx, "ghp_test", "acme")
		require.Error(t, err)
		assert.Equal(t, 400, apperrors.ToHTTPStatus(apperrors.CodeOf(err)))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Acme", usecase.DisplayName("acme"))
	assert.Equal(t, "My-Org", usecase.DisplayName("my-org"))
}
