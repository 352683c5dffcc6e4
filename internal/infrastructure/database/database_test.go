package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/database"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, "silent", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db, logger) })

	require.NoError(t, database.Migrate(db, logger))
	return db
}

const fixture = `
organization:
  github_org: acme
  name: Acme Corp
  total_seats: 10
  copilot_seats: 4
users:
  - github_username: alice
    name: Alice
    team: Backend
    maturity_level: 5
  - github_username: bob
    team: Backend
    maturity_level: 3
  - github_username: carol
    team: QA
    maturity_level: 0
kpis:
  - name: Activation Rate
    category: adoption
    phase: 1
    target_value: 60
    current_value: 72.5
  - name: Work Linkage
    category: productivity
    phase: 2
    target_value: 50
    current_value: 48.3
metrics:
  days: 14
  random_seed: 7
  active_users: 2
  languages:
    Go: 60
    SQL: 40
  editors:
    VS Code: 100
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConnection(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		_, err := database.NewConnection(&config.DatabaseConfig{Driver: "mysql"}, "silent", zap.NewNop())
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("migrate is idempotent", func(t *testing.T) {
		db := openMemory(t)
		assert.NoError(t, database.Migrate(db, zap.NewNop()))

		for _, table := range []string{"organizations", "users", "daily_metrics", "user_activity_logs", "kpis", "mcp_events", "code_quality_metrics"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
		assert.True(t, db.Migrator().HasIndex("daily_metrics", "idx_daily_metrics_date"))
	})
}

func TestLoadSeedFile(t *testing.T) {
	t.Run("valid fixture", func(t *testing.T) {
		file, err := database.LoadSeedFile(writeFixture(t, fixture))
		require.NoError(t, err)
		assert.Equal(t, "acme", file.Organization.GithubOrg)
		assert.Len(t, file.Users, 3)
		assert.Len(t, file.KPIs, 2)
		assert.Equal(t, 14, file.Metrics.Days)
	})

	t.Run("shipped fixture loads", func(t *testing.T) {
		file, err := database.LoadSeedFile(filepath.Join("..", "..", "..", "configs", "seed.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "xoriant", file.Organization.GithubOrg)
		assert.Len(t, file.Users, 20)
		assert.Len(t, file.KPIs, 4)
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty file", "  \n", "is empty"},
		{"missing org", "users: []\n", "organization.github_org is required"},
		{"duplicate user", "organization: {github_org: a}\nusers:\n  - github_username: x\n  - github_username: x\n", "duplicate github_username"},
		{"bad level", "organization: {github_org: a}\nusers:\n  - github_username: x\n    maturity_level: 9\n", "maturity_level"},
		{"bad phase", "organization: {github_org: a}\nkpis:\n  - name: k\n    phase: 5\n", "phase must be within 1..4"},
		{"malformed", "organization: [\n", "unmarshal seed yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := database.LoadSeedFile(writeFixture(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := database.LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read seed file")
	})
}

func TestSeeder(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	repos := database.NewRepositories(db, zap.NewNop())
	seeder := database.NewSeeder(repos, zap.NewNop())

	file, err := database.LoadSeedFile(writeFixture(t, fixture))
	require.NoError(t, err)

	result, err := seeder.Seed(ctx, file)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 3, result.Users)
	assert.Equal(t, 14, result.Metrics)
	assert.Equal(t, 2, result.KPIs)

	t.Run("users carry level-derived flags", func(t *testing.T) {
		alice, err := repos.User.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, alice)
		assert.True(t, alice.CopilotEnabled)
		assert.True(t, alice.IsWeeklyActive)
		assert.NotNil(t, alice.LastActivityDate)

		bob, err := repos.User.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", bob.Name)

		carol, err := repos.User.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.False(t, carol.CopilotEnabled)
		assert.Nil(t, carol.CopilotEnabledDate)
	})

	t.Run("metrics rows are consistent", func(t *testing.T) {
		rows, err := repos.Metrics.List(ctx, entity.MetricsFilter{Since: entity.WindowStart(time.Now(), 30)})
		require.NoError(t, err)
		require.Len(t, rows, 14)
		for _, row := range rows {
			assert.Equal(t, 3, row.TotalUsers)
			assert.Equal(t, 2, row.EnabledUsers)
			assert.Equal(t, 1, row.L0Count)
			assert.Equal(t, 1, row.L3Count)
			assert.Equal(t, 1, row.L5Count)
			assert.LessOrEqual(t, row.TotalSuggestionsAccepted, row.TotalSuggestionsShown)
			assert.Contains(t, row.LanguageBreakdown.Data(), "Go")
		}
		assert.True(t, rows[0].Date.Before(rows[len(rows)-1].Date))
	})

	t.Run("kpis are evaluated", func(t *testing.T) {
		kpi, err := repos.KPI.GetByName(ctx, "Activation Rate")
		require.NoError(t, err)
		assert.True(t, kpi.IsAchieved)

		kpi, err = repos.KPI.GetByName(ctx, "Work Linkage")
		require.NoError(t, err)
		assert.False(t, kpi.IsAchieved)
	})

	t.Run("second run is skipped", func(t *testing.T) {
		again, err := seeder.Seed(ctx, file)
		require.NoError(t, err)
		assert.True(t, again.Skipped)

		orgs, err := repos.Organization.List(ctx)
		require.NoError(t, err)
		assert.Len(t, orgs, 1)
	})
}
