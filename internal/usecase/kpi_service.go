package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// KPIService manages the phase KPIs and measures their current values.
type KPIService struct {
	kpiRepo     repository.KPIRepository
	userRepo    repository.UserRepository
	metricsRepo repository.MetricsRepository
	txManager   repository.TransactionManager
	logger      *zap.Logger
	now         func() time.Time
}

// NewKPIService creates a new KPIService instance
func NewKPIService(
	kpiRepo repository.KPIRepository,
	userRepo repository.UserRepository,
	metricsRepo repository.MetricsRepository,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) *KPIService {
	return &KPIService{
		kpiRepo:     kpiRepo,
		userRepo:    userRepo,
		metricsRepo: metricsRepo,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// List returns the stored KPIs ordered by phase and name.
func (s *KPIService) List(ctx context.Context) ([]*dto.KPIResponse, error) {
	kpis, err := s.kpiRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.KPIsToResponses(kpis), nil
}

// ListOrDefaults returns the stored KPIs, or the canonical four unmeasured when none are stored.
func (s *KPIService) ListOrDefaults(ctx context.Context) ([]*dto.KPIResponse, error) {
	kpis, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(kpis) == 0 {
		return mapper.DefaultKPIResponses(), nil
	}
	return kpis, nil
}

// Values returns the stored KPIs keyed by name.
func (s *KPIService) Values(ctx context.Context) (map[string]dto.KPIValue, error) {
	kpis, err := s.kpiRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]dto.KPIValue, len(kpis))
	for _, kpi := range kpis {
		eval := entity.EvaluateKPI(kpi.TargetValue, kpi.CurrentValue)
		values[kpi.Name] = dto.KPIValue{
			Target:   eval.Target,
			Current:  eval.Current,
			Achieved: eval.Achieved,
		}
	}
	return values, nil
}

func (s *KPIService) Create(ctx context.Context, req *dto.CreateKPIRequest) (*dto.KPIResponse, error) {
	if req.Phase < 1 || req.Phase > 4 {
		return nil, domainErrors.ErrInvalidPhase
	}
	mdate, err := parseOptionalDate(req.MeasurementDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.kpiRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainErrors.ErrDuplicateKPI
	}

	kpi := mapper.KPIFromCreate(req, mdate)
	if err := s.kpiRepo.Create(ctx, kpi); err != nil {
		return nil, err
	}
	return mapper.KPIToResponse(kpi), nil
}

func (s *KPIService) Update(ctx context.Context, id uint, req *dto.UpdateKPIRequest) (*dto.KPIResponse, error) {
	if req.Phase != nil && (*req.Phase < 1 || *req.Phase > 4) {
		return nil, domainErrors.ErrInvalidPhase
	}

	kpi, err := s.kpiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kpi == nil {
		return nil, domainErrors.ErrKPINotFound
	}

	if req.Name != nil && *req.Name != kpi.Name {
		other, err := s.kpiRepo.GetByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domainErrors.ErrDuplicateKPI
		}
	}

	mdate := kpi.MeasurementDate
	if req.MeasurementDate != nil {
		mdate, err = parseOptionalDate(*req.MeasurementDate)
		if err != nil {
			return nil, err
		}
	}

	mapper.ApplyKPIUpdate(kpi, req, mdate)
	if err := s.kpiRepo.Update(ctx, kpi); err != nil {
		return nil, err
	}
	return mapper.KPIToResponse(kpi), nil
}

func (s *KPIService) Delete(ctx context.Context, id uint) error {
	kpi, err := s.kpiRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if kpi == nil {
		return domainErrors.ErrKPINotFound
	}
	return s.kpiRepo.Delete(ctx, id)
}

// Measure computes the current value of every canonical KPI for orgID (all when nil).
// KOIs Achieved counts the other canonical KPIs whose current value meets its target;
// targets come from stored rows when present.
func (s *KPIService) Measure(ctx context.Context, orgID *uint, targets map[string]float64) (map[string]float64, error) {
	counts, err := s.userRepo.Counts(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	commits, err := s.metricsRepo.SumCommits(ctx, entity.MetricsFilter{
		OrganizationID: orgID,
		Since:          entity.WindowStart(s.now(), entity.DefaultWindowDays),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum commits: %w", err)
	}

	values := map[string]float64{
		entity.KPIActivationRate:   entity.Round(entity.Ratio(float64(counts.WeeklyActive), float64(counts.Enabled))*100, 2),
		entity.KPIWorkLinkage:      entity.Round(entity.Ratio(float64(commits.AIAssisted), float64(commits.Total))*100, 2),
		entity.KPIConsistencyScore: entity.Round(entity.Ratio(float64(counts.Consistent), float64(counts.Enabled))*100, 2),
	}

	achieved := 0
	for _, def := range entity.CanonicalKPIs() {
		current, ok := values[def.Name]
		if !ok {
			continue
		}
		target := def.Target
		if t, ok := targets[def.Name]; ok {
			target = t
		}
		if entity.EvaluateKPI(target, current).Achieved {
			achieved++
		}
	}
	values[entity.KPIKOIsAchieved] = float64(achieved)

	return values, nil
}

// Refresh measures the canonical KPIs and stores the values, creating missing rows.
func (s *KPIService) Refresh(ctx context.Context, orgID *uint) ([]*dto.KPIResponse, error) {
	today := entity.Day(s.now())

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		stored := make(map[string]*model.KPI)
		targets := make(map[string]float64)
		for _, def := range entity.CanonicalKPIs() {
			kpi, err := s.kpiRepo.GetByName(ctx, def.Name)
			if err != nil {
				return err
			}
			if kpi == nil {
				kpi = mapper.KPIFromDefinition(def)
			}
			stored[def.Name] = kpi
			targets[def.Name] = kpi.TargetValue
		}

		values, err := s.Measure(ctx, orgID, targets)
		if err != nil {
			return err
		}

		for _, def := range entity.CanonicalKPIs() {
			kpi := stored[def.Name]
			kpi.CurrentValue = values[def.Name]
			kpi.MeasurementDate = &today
			mapper.RefreshAchieved(kpi)

			if kpi.ID == 0 {
				err = s.kpiRepo.Create(ctx, kpi)
			} else {
				err = s.kpiRepo.Update(ctx, kpi)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to refresh KPIs: %w", err)
	}

	s.logger.Info("KPIs refreshed", zap.Time("measurement_date", today))
	return s.List(ctx)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, domainErrors.ErrInvalidDate
	}
	return &t, nil
}
