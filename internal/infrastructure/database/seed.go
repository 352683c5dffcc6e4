package database

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
)

// DefaultSeedFile is read when database.seed_file is empty.
const DefaultSeedFile = "configs/seed.yaml"

type SeedFile struct {
	Organization SeedOrganization `yaml:"organization"`
	Users        []SeedUser       `yaml:"users"`
	KPIs         []SeedKPI        `yaml:"kpis"`
	Metrics      SeedMetrics      `yaml:"metrics"`
}

type SeedOrganization struct {
	GithubOrg    string `yaml:"github_org"`
	Name         string `yaml:"name"`
	TotalSeats   int    `yaml:"total_seats"`
	CopilotSeats int    `yaml:"copilot_seats"`
}

type SeedUser struct {
	GithubUsername string `yaml:"github_username"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Team           string `yaml:"team"`
	MaturityLevel  int    `yaml:"maturity_level"`
}

type SeedKPI struct {
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category"`
	Phase        int     `yaml:"phase"`
	TargetValue  float64 `yaml:"target_value"`
	CurrentValue float64 `yaml:"current_value"`
}

// SeedMetrics drives the generated daily rows. The same RandomSeed always yields the same rows.
type SeedMetrics struct {
	Days        int            `yaml:"days"`
	RandomSeed  uint64         `yaml:"random_seed"`
	ActiveUsers int            `yaml:"active_users"`
	Languages   map[string]int `yaml:"languages"`
	Editors     map[string]int `yaml:"editors"`
}

// LoadSeedFile reads and validates a seed fixture.
func LoadSeedFile(path string) (*SeedFile, error) {
	if path == "" {
		path = DefaultSeedFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("seed file %s is empty", path)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal seed yaml: %w", err)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *SeedFile) validate() error {
	if f.Organization.GithubOrg == "" {
		return fmt.Errorf("organization.github_org is required")
	}
	seen := make(map[string]bool, len(f.Users))
	for i, u := range f.Users {
		if u.GithubUsername == "" {
			return fmt.Errorf("users[%d]: github_username is required", i)
		}
		if seen[u.GithubUsername] {
			return fmt.Errorf("users[%d]: duplicate github_username %q", i, u.GithubUsername)
		}
		seen[u.GithubUsername] = true
		if !entity.MaturityLevel(u.MaturityLevel).Valid() {
			return fmt.Errorf("users[%d]: maturity_level must be within 0..5", i)
		}
	}
	for i, k := range f.KPIs {
		if k.Name == "" {
			return fmt.Errorf("kpis[%d]: name is required", i)
		}
		if k.Phase < 1 || k.Phase > 4 {
			return fmt.Errorf("kpis[%d]: phase must be within 1..4", i)
		}
	}
	if f.Metrics.Days < 0 {
		return fmt.Errorf("metrics.days must not be negative")
	}
	return nil
}

// SeedResult counts the rows written by a seed run.
type SeedResult struct {
	Skipped        bool
	OrganizationID uint
	Users          int
	Metrics        int
	KPIs           int
}

// Seeder loads sample data into an empty database.
type Seeder struct {
	repos  *domainRepo.Repositories
	logger *zap.Logger
	now    func() time.Time
}

func NewSeeder(repos *domainRepo.Repositories, logger *zap.Logger) *Seeder {
	return &Seeder{repos: repos, logger: logger, now: time.Now}
}

// Seed writes file in one transaction. It does nothing when any organization exists.
func (s *Seeder) Seed(ctx context.Context, file *SeedFile) (*SeedResult, error) {
	existing, err := s.repos.Organization.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.logger.Info("Database already contains data, seeding skipped",
			zap.Int("organizations", len(existing)))
		return &SeedResult{Skipped: true}, nil
	}

	result := &SeedResult{}
	err = s.repos.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		org := &model.Organization{
			GithubOrg:    file.Organization.GithubOrg,
			Name:         file.Organization.Name,
			TotalSeats:   file.Organization.TotalSeats,
			CopilotSeats: file.Organization.CopilotSeats,
		}
		if err := s.repos.Organization.Create(ctx, org); err != nil {
			return err
		}
		result.OrganizationID = org.ID

		today := entity.Day(s.now())
		for _, u := range file.Users {
			if err := s.repos.User.Create(ctx, seedUser(u, org.ID, today)); err != nil {
				return err
			}
			result.Users++
		}

		for _, row := range generateMetrics(org.ID, file.Users, file.Metrics, today) {
			if err := s.repos.Metrics.Create(ctx, row); err != nil {
				return err
			}
			result.Metrics++
		}

		for _, k := range file.KPIs {
			kpi := &model.KPI{
				Name:            k.Name,
				Category:        k.Category,
				Phase:           k.Phase,
				TargetValue:     k.TargetValue,
				CurrentValue:    k.CurrentValue,
				MeasurementDate: &today,
			}
			mapper.RefreshAchieved(kpi)
			if err := s.repos.KPI.Create(ctx, kpi); err != nil {
				return err
			}
			result.KPIs++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed database", zap.Error(err))
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	s.logger.Info("Database seeded",
		zap.String("github_org", file.Organization.GithubOrg),
		zap.Int("users", result.Users),
		zap.Int("metrics", result.Metrics),
		zap.Int("kpis", result.KPIs))
	return result, nil
}

// seedUser derives the activity flags a user at the given level would have.
func seedUser(u SeedUser, orgID uint, today time.Time) *model.User {
	level := entity.MaturityLevel(u.MaturityLevel)
	user := &model.User{
		GithubUsername:  u.GithubUsername,
		OrganizationID:  orgID,
		Name:            u.Name,
		Email:           u.Email,
		Team:            u.Team,
		MaturityLevel:   u.MaturityLevel,
		CopilotEnabled:  level >= entity.LevelEnabled,
		IsMonthlyActive: level >= entity.LevelActive,
		IsWeeklyActive:  level >= entity.LevelWorking,
	}
	if user.CopilotEnabled {
		enabled := today.AddDate(0, 0, -60)
		user.CopilotEnabledDate = &enabled
	}
	if user.IsMonthlyActive {
		last := today
		if !user.IsWeeklyActive {
			last = today.AddDate(0, 0, -10)
		}
		user.LastActivityDate = &last
	}
	if user.Name == "" {
		user.Name = u.GithubUsername
	}
	return user
}

// generateMetrics builds one row per day ending today, with lower weekend activity.
func generateMetrics(orgID uint, users []SeedUser, cfg SeedMetrics, today time.Time) []*model.DailyMetrics {
	if cfg.Days == 0 {
		return nil
	}
	totalUsers := len(users)
	var levels [6]int
	enabled := 0
	for _, u := range users {
		levels[u.MaturityLevel]++
		if u.MaturityLevel >= int(entity.LevelEnabled) {
			enabled++
		}
	}
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed))
	between := func(lo, hi int) int { return lo + rng.IntN(hi-lo+1) }

	baseActive := cfg.ActiveUsers
	if baseActive == 0 || baseActive > enabled {
		baseActive = enabled
	}

	rows := make([]*model.DailyMetrics, 0, cfg.Days)
	for i := cfg.Days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		active := baseActive
		if weekend {
			active = baseActive * 4 / 10
		} else if active > 1 {
			active -= rng.IntN(2)
		}

		shown := between(800, 1500)
		if weekend {
			shown = shown * 3 / 10
		}
		accepted := shown * between(28, 38) / 100
		linesSuggested := shown * between(3, 5)
		linesAccepted := accepted * between(3, 5)
		commits := between(30, 60)
		if weekend {
			commits /= 3
		}
		prs := commits / between(4, 6)

		row := &model.DailyMetrics{
			OrganizationID:           orgID,
			Date:                     date,
			TotalUsers:               totalUsers,
			EnabledUsers:             enabled,
			ActiveUsers:              active,
			WeeklyActiveUsers:        baseActive,
			MonthlyActiveUsers:       totalUsers,
			PromptsPerUser:           entity.Round(entity.Ratio(float64(between(40, 120)), float64(max(active, 1))), 2),
			FeaturesUtilized:         between(3, 6),
			TeamActivationRate:       entity.Round(entity.Percent(active, max(totalUsers, 1)), 2),
			TotalSuggestionsShown:    shown,
			TotalSuggestionsAccepted: accepted,
			TotalLinesSuggested:      linesSuggested,
			TotalLinesAccepted:       linesAccepted,
			TotalChatInteractions:    between(20, 80),
			TotalCommits:             commits,
			AIAssistedCommits:        commits * between(35, 60) / 100,
			TotalPRs:                 prs,
			AIAssistedPRs:            prs / 2,
			AICodeLines:              linesAccepted,
			AvgTimeToFirstCommit:     entity.Round(2+rng.Float64()*4, 1),
			AvgPRCycleTime:           entity.Round(12+rng.Float64()*24, 1),
			AICodeRetentionRate:      entity.Round(82+rng.Float64()*13, 1),
			AICodeModificationRate:   entity.Round(10+rng.Float64()*15, 1),
			AICodeBugRate:            entity.Round(1+rng.Float64()*3, 1),
			PRRejectionRate:          entity.Round(3+rng.Float64()*7, 1),
			AvgReviewComments:        entity.Round(1+rng.Float64()*3, 1),
			LanguageBreakdown:        model.NewBreakdown(splitAccepted(accepted, cfg.Languages)),
			EditorBreakdown:          model.NewBreakdown(splitAccepted(accepted, cfg.Editors)),
		}
		row.L0Count, row.L1Count, row.L2Count = levels[0], levels[1], levels[2]
		row.L3Count, row.L4Count, row.L5Count = levels[3], levels[4], levels[5]
		mapper.RefreshRates(row)
		rows = append(rows, row)
	}
	return rows
}

// splitAccepted distributes accepted suggestions across keys by their percentage weights.
func splitAccepted(accepted int, weights map[string]int) map[string]int {
	out := make(map[string]int, len(weights))
	for key, pct := range weights {
		out[key] = accepted * pct / 100
	}
	return out
}
