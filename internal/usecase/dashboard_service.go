package usecase

import (
	"context"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// DashboardService assembles the read-only dashboard views.
type DashboardService struct {
	userRepo    repository.UserRepository
	metricsRepo repository.MetricsRepository
	kpis        *KPIService
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	userRepo repository.UserRepository,
	metricsRepo repository.MetricsRepository,
	kpis *KPIService,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		metricsRepo: metricsRepo,
		kpis:        kpis,
		logger:      logger,
		now:         time.Now,
	}
}

// Summary combines live user counts and maturity levels with the latest daily row.
// Metric fields are zero when no row exists.
func (s *DashboardService) Summary(ctx context.Context, orgID *uint) (*dto.DashboardSummary, error) {
	counts, err := s.userRepo.Counts(ctx, orgID)
	if err != nil {
		return nil, err
	}
	levels, err := s.userRepo.CountByMaturity(ctx, orgID)
	if err != nil {
		return nil, err
	}
	latest, err := s.metricsRepo.Latest(ctx, orgID)
	if err != nil {
		return nil, err
	}
	kpis, err := s.kpis.Values(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalUsers:     counts.Total,
		EnabledUsers:   counts.Enabled,
		ActiveUsers:    counts.WeeklyActive,
		ActivationRate: entity.Round(entity.Ratio(float64(counts.WeeklyActive), float64(counts.Enabled))*100, 1),

		L0Count: levels[int(entity.LevelNotEnabled)],
		L1Count: levels[int(entity.LevelEnabled)],
		L2Count: levels[int(entity.LevelActive)],
		L3Count: levels[int(entity.LevelWorking)],
		L4Count: levels[int(entity.LevelConsistent)],
		L5Count: levels[int(entity.LevelValue)],

		KPIs:              kpis,
		LanguageBreakdown: map[string]int{},
		EditorBreakdown:   map[string]int{},
	}

	if latest != nil {
		summary.WeeklyActiveUsers = latest.WeeklyActiveUsers
		summary.MonthlyActiveUsers = latest.MonthlyActiveUsers
		summary.AcceptanceRate = mapper.AcceptanceRate(latest)
		summary.PromptsPerUser = latest.PromptsPerUser
		summary.FeaturesUtilized = latest.FeaturesUtilized
		summary.TeamActivationRate = latest.TeamActivationRate

		summary.TotalSuggestions = latest.TotalSuggestionsShown
		summary.AcceptedSuggestions = latest.TotalSuggestionsAccepted
		summary.ChatInteractions = latest.TotalChatInteractions
		summary.AIAssistedCommits = latest.AIAssistedCommits
		summary.AIAssistedPRs = latest.AIAssistedPRs
		summary.AICodeLines = latest.AICodeLines

		summary.CodeRetentionRate = latest.AICodeRetentionRate
		summary.ModificationRate = latest.AICodeModificationRate
		summary.BugRate = latest.AICodeBugRate
		summary.PRRejectionRate = latest.PRRejectionRate

		summary.LanguageBreakdown = mapper.BreakdownMap(latest.LanguageBreakdown)
		summary.EditorBreakdown = mapper.BreakdownMap(latest.EditorBreakdown)
	}

	return summary, nil
}

// Trends returns one point per stored day in the window, oldest first.
func (s *DashboardService) Trends(ctx context.Context, days int, orgID *uint) ([]dto.TrendPoint, error) {
	if days <= 0 {
		return nil, domainErrors.ErrInvalidDays
	}

	rows, err := s.metricsRepo.List(ctx, entity.MetricsFilter{
		OrganizationID: orgID,
		Since:          entity.WindowStart(s.now(), days),
	})
	if err != nil {
		return nil, err
	}

	points := make([]dto.TrendPoint, len(rows))
	for i, row := range rows {
		points[i] = mapper.MetricsToTrendPoint(row)
	}
	return points, nil
}

// MaturityDistribution returns all six levels, including empty ones.
func (s *DashboardService) MaturityDistribution(ctx context.Context, orgID *uint) ([]dto.MaturityDistributionItem, error) {
	counts, err := s.userRepo.CountByMaturity(ctx, orgID)
	if err != nil {
		return nil, err
	}

	levels := entity.Levels()
	items := make([]dto.MaturityDistributionItem, len(levels))
	for i, info := range levels {
		items[i] = dto.MaturityDistributionItem{
			Level:       int(info.Level),
			Name:        info.Name,
			Description: info.Description,
			Color:       info.Color,
			Count:       counts[int(info.Level)],
		}
	}
	return items, nil
}

// TeamBreakdown returns per-team totals with weekly-active over enabled users.
func (s *DashboardService) TeamBreakdown(ctx context.Context, orgID *uint) ([]dto.TeamBreakdownItem, error) {
	stats, err := s.userRepo.TeamStats(ctx, orgID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TeamBreakdownItem, len(stats))
	for i, st := range stats {
		items[i] = dto.TeamBreakdownItem{
			Team:           st.Team,
			TotalUsers:     st.Total,
			EnabledUsers:   st.Enabled,
			ActiveUsers:    st.Active,
			AvgMaturity:    entity.Round(st.AvgMaturity, 1),
			ActivationRate: entity.Round(entity.Ratio(float64(st.Active), float64(st.Enabled))*100, 1),
		}
	}
	return items, nil
}

// KPIs returns the stored KPIs or the canonical defaults.
func (s *DashboardService) KPIs(ctx context.Context) ([]*dto.KPIResponse, error) {
	return s.kpis.ListOrDefaults(ctx)
}
