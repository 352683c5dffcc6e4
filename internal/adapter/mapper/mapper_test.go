package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestMetricsFromRequest_DerivesRates(t *testing.T) {
	day := time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)
	req := &dto.MetricsRequest{
		OrganizationID:           7,
		EnabledUsers:             8,
		ActiveUsers:              6,
		TotalSuggestionsShown:    3,
		TotalSuggestionsAccepted: 1,
		LanguageBreakdown:        map[string]int{"Go": 1},
	}

	m := MetricsFromRequest(req, day)

	assert.Equal(t, uint(7), m.OrganizationID)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, 75.0, m.ActivationRate)
	assert.Equal(t, 33.33, m.AcceptanceRate)

	resp := MetricsToResponse(m)
	require.NotNil(t, resp)
	assert.Equal(t, "2025-03-04", resp.Date)
	assert.Equal(t, map[string]int{"Go": 1}, resp.LanguageBreakdown)
	assert.Equal(t, map[string]int{}, resp.EditorBreakdown)
}

func TestRates_ZeroDenominators(t *testing.T) {
	m := &model.DailyMetrics{ActiveUsers: 4, TotalSuggestionsAccepted: 2}
	RefreshRates(m)
	assert.Zero(t, m.ActivationRate)
	assert.Zero(t, m.AcceptanceRate)
	assert.Nil(t, MetricsToResponse(nil))
}

func TestUserFromCreate(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		u := UserFromCreate(&dto.CreateUserRequest{GithubUsername: "alice"}, now)
		assert.Equal(t, DefaultOrganizationID, u.OrganizationID)
		assert.Equal(t, "alice", u.Name)
		assert.False(t, u.CopilotEnabled)
		assert.Nil(t, u.CopilotEnabledDate)
		assert.Zero(t, u.MaturityLevel)
	})

	t.Run("is_active alias", func(t *testing.T) {
		u := UserFromCreate(&dto.CreateUserRequest{GithubUsername: "bob", IsActive: boolPtr(true)}, now)
		assert.True(t, u.CopilotEnabled)
		require.NotNil(t, u.CopilotEnabledDate)
		assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), *u.CopilotEnabledDate)
	})

	t.Run("copilot_enabled wins", func(t *testing.T) {
		u := UserFromCreate(&dto.CreateUserRequest{
			GithubUsername: "carol",
			CopilotEnabled: boolPtr(true),
			IsActive:       boolPtr(false),
			MaturityLevel:  intPtr(4),
		}, now)
		assert.True(t, u.CopilotEnabled)
		assert.Equal(t, 4, u.MaturityLevel)
		assert.True(t, u.IsWeeklyActive)
		assert.True(t, u.IsMonthlyActive)
	})

	t.Run("disabled user is L0 whatever level is sent", func(t *testing.T) {
		u := UserFromCreate(&dto.CreateUserRequest{
			GithubUsername: "dave",
			CopilotEnabled: boolPtr(false),
			MaturityLevel:  intPtr(3),
		}, now)
		assert.Zero(t, u.MaturityLevel)
		assert.False(t, u.IsWeeklyActive)
		assert.False(t, u.IsMonthlyActive)
	})

	t.Run("enabled user without a level starts at L1", func(t *testing.T) {
		u := UserFromCreate(&dto.CreateUserRequest{GithubUsername: "erin", CopilotEnabled: boolPtr(true)}, now)
		assert.Equal(t, 1, u.MaturityLevel)
	})
}

func TestApplyUserUpdate_ReconcilesLevel(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("disabling drops the level", func(t *testing.T) {
		u := &model.User{GithubUsername: "alice", CopilotEnabled: true, MaturityLevel: 4}
		ApplyUserUpdate(u, &dto.UpdateUserRequest{CopilotEnabled: boolPtr(false)}, now)
		assert.False(t, u.CopilotEnabled)
		assert.Zero(t, u.MaturityLevel)
	})

	t.Run("level on a disabled user is ignored", func(t *testing.T) {
		u := &model.User{GithubUsername: "bob"}
		ApplyUserUpdate(u, &dto.UpdateUserRequest{MaturityLevel: intPtr(5)}, now)
		assert.Zero(t, u.MaturityLevel)
	})

	t.Run("enabling through is_active raises L0 to L1", func(t *testing.T) {
		u := &model.User{GithubUsername: "carol"}
		ApplyUserUpdate(u, &dto.UpdateUserRequest{IsActive: boolPtr(true)}, now)
		assert.True(t, u.CopilotEnabled)
		assert.Equal(t, 1, u.MaturityLevel)
		require.NotNil(t, u.CopilotEnabledDate)
	})
}

func TestKPIMapping(t *testing.T) {
	kpi := KPIFromCreate(&dto.CreateKPIRequest{Name: "Activation Rate", Phase: 1, TargetValue: 60, CurrentValue: 72.5}, nil)
	assert.True(t, kpi.IsAchieved)

	current := 10.0
	ApplyKPIUpdate(kpi, &dto.UpdateKPIRequest{CurrentValue: &current}, nil)
	assert.False(t, kpi.IsAchieved)

	// a stale stored flag is re-evaluated on read
	kpi.IsAchieved = true
	resp := KPIToResponse(kpi)
	assert.False(t, resp.Achieved)
	assert.Empty(t, resp.MeasurementDate)

	defaults := DefaultKPIResponses()
	require.NotEmpty(t, defaults)
	for _, d := range defaults {
		assert.Zero(t, d.Current)
	}
}
