package usecase

import (
	"context"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// MetricsService handles daily metrics and their adoption, productivity and quality views.
type MetricsService struct {
	metricsRepo repository.MetricsRepository
	orgRepo     repository.OrganizationRepository
	txManager   repository.TransactionManager
	logger      *zap.Logger
	now         func() time.Time
}

// NewMetricsService creates a new MetricsService instance
func NewMetricsService(
	metricsRepo repository.MetricsRepository,
	orgRepo repository.OrganizationRepository,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) *MetricsService {
	return &MetricsService{
		metricsRepo: metricsRepo,
		orgRepo:     orgRepo,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// window loads rows with date >= today-days in ascending date order.
func (s *MetricsService) window(ctx context.Context, days int, orgID *uint) ([]*model.DailyMetrics, error) {
	if days <= 0 {
		return nil, domainErrors.ErrInvalidDays
	}
	return s.metricsRepo.List(ctx, entity.MetricsFilter{
		OrganizationID: orgID,
		Since:          entity.WindowStart(s.now(), days),
	})
}

// List returns the rows of the window, newest first.
func (s *MetricsService) List(ctx context.Context, days int, orgID *uint) ([]*dto.MetricsResponse, error) {
	rows, err := s.window(ctx, days, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MetricsResponse, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = mapper.MetricsToResponse(row)
	}
	return out, nil
}

func (s *MetricsService) Latest(ctx context.Context, orgID *uint) (*dto.MetricsResponse, error) {
	latest, err := s.metricsRepo.Latest(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, domainErrors.ErrNoMetrics
	}
	return mapper.MetricsToResponse(latest), nil
}

// Upsert creates or replaces the row for (organization, date). The bool result is true
// when a new row was created.
func (s *MetricsService) Upsert(ctx context.Context, req *dto.MetricsRequest) (*dto.MetricsResponse, bool, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, false, domainErrors.ErrInvalidDate
	}

	var (
		row     *model.DailyMetrics
		created bool
	)
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		org, err := s.orgRepo.GetByID(ctx, req.OrganizationID)
		if err != nil {
			return err
		}
		if org == nil {
			return domainErrors.ErrOrganizationRequired
		}

		row, err = s.metricsRepo.GetByOrgAndDate(ctx, req.OrganizationID, date)
		if err != nil {
			return err
		}
		if row == nil {
			created = true
			row = mapper.MetricsFromRequest(req, date)
			return s.metricsRepo.Create(ctx, row)
		}

		mapper.ApplyMetricsRequest(row, req)
		return s.metricsRepo.Update(ctx, row)
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("Daily metrics stored",
		zap.Uint("organization_id", row.OrganizationID),
		zap.String("date", req.Date),
		zap.Bool("created", created))

	return mapper.MetricsToResponse(row), created, nil
}

func (s *MetricsService) Delete(ctx context.Context, id uint) error {
	row, err := s.metricsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return domainErrors.ErrMetricsNotFound
	}
	return s.metricsRepo.Delete(ctx, id)
}

// Adoption summarises the latest row of the window and charts active users.
func (s *MetricsService) Adoption(ctx context.Context, days int, orgID *uint) (*dto.AdoptionResponse, error) {
	rows, err := s.window(ctx, days, orgID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdoptionResponse{Trends: make([]dto.AdoptionTrend, 0, len(rows))}
	if len(rows) == 0 {
		return resp, nil
	}

	prompts := make([]float64, len(rows))
	for i, m := range rows {
		prompts[i] = m.PromptsPerUser
		resp.Trends = append(resp.Trends, dto.AdoptionTrend{
			Date:           m.Date.Format(dto.TrendDateLayout),
			ActiveUsers:    m.ActiveUsers,
			Prompts:        int(m.PromptsPerUser),
			Suggestions:    m.TotalSuggestionsShown,
			ActivationRate: mapper.ActivationRate(m),
		})
	}

	latest := rows[len(rows)-1]
	resp.Summary = dto.AdoptionSummary{
		WAU:               latest.WeeklyActiveUsers,
		MAU:               latest.MonthlyActiveUsers,
		ActivationRate:    mapper.ActivationRate(latest),
		AvgPromptsPerUser: entity.Round(entity.Mean(prompts), 2),
		TotalUsers:        latest.TotalUsers,
		EnabledUsers:      latest.EnabledUsers,
	}
	return resp, nil
}

// Productivity sums suggestion and AI output counts over the window.
func (s *MetricsService) Productivity(ctx context.Context, days int, orgID *uint) (*dto.ProductivityResponse, error) {
	rows, err := s.window(ctx, days, orgID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductivityResponse{Trends: make([]dto.ProductivityTrend, 0, len(rows))}
	if len(rows) == 0 {
		return resp, nil
	}

	rates := make([]float64, len(rows))
	for i, m := range rows {
		rate := mapper.AcceptanceRate(m)
		rates[i] = rate

		resp.Summary.TotalAICommits += m.AIAssistedCommits
		resp.Summary.TotalAIPRs += m.AIAssistedPRs
		resp.Summary.TotalLinesGenerated += m.AICodeLines
		resp.Summary.TotalSuggestions += m.TotalSuggestionsShown
		resp.Summary.TotalAccepted += m.TotalSuggestionsAccepted

		resp.Trends = append(resp.Trends, dto.ProductivityTrend{
			Date:                m.Date.Format(dto.TrendDateLayout),
			SuggestionsShown:    m.TotalSuggestionsShown,
			SuggestionsAccepted: m.TotalSuggestionsAccepted,
			AcceptanceRate:      rate,
			AICommits:           m.AIAssistedCommits,
			AIPRs:               m.AIAssistedPRs,
			LinesGenerated:      m.AICodeLines,
		})
	}
	resp.Summary.AvgAcceptanceRate = entity.Round(entity.Mean(rates), 2)
	return resp, nil
}

// Quality averages the code quality rates over the window.
func (s *MetricsService) Quality(ctx context.Context, days int, orgID *uint) (*dto.QualityResponse, error) {
	rows, err := s.window(ctx, days, orgID)
	if err != nil {
		return nil, err
	}

	resp := &dto.QualityResponse{Trends: make([]dto.QualityTrend, 0, len(rows))}
	if len(rows) == 0 {
		return resp, nil
	}

	var retention, modification, bugs, rejection []float64
	for _, m := range rows {
		retention = append(retention, m.AICodeRetentionRate)
		modification = append(modification, m.AICodeModificationRate)
		bugs = append(bugs, m.AICodeBugRate)
		rejection = append(rejection, m.PRRejectionRate)

		resp.Trends = append(resp.Trends, dto.QualityTrend{
			Date:             m.Date.Format(dto.TrendDateLayout),
			RetentionRate:    m.AICodeRetentionRate,
			ModificationRate: m.AICodeModificationRate,
			BugRate:          m.AICodeBugRate,
			PRRejectionRate:  m.PRRejectionRate,
		})
	}

	resp.Summary = dto.QualitySummary{
		AvgRetentionRate:    entity.Round(entity.Mean(retention), 2),
		AvgModificationRate: entity.Round(entity.Mean(modification), 2),
		AvgBugRate:          entity.Round(entity.Mean(bugs), 2),
		AvgPRRejectionRate:  entity.Round(entity.Mean(rejection), 2),
	}
	return resp, nil
}
