package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// EventService records AI-attributed repository actions reported by MCP tools.
type EventService struct {
	eventRepo repository.EventRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService creates a new EventService instance
func NewEventService(eventRepo repository.EventRepository, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *EventService) Record(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	if !slices.Contains(model.EventTypes, req.EventType) {
		return nil, domainErrors.ErrInvalidEventType
	}

	event := mapper.EventFromRequest(req, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Debug("MCP event recorded",
		zap.String("event_type", event.EventType),
		zap.String("github_username", event.GithubUsername),
		zap.String("repository", event.Repository))

	return mapper.EventToResponse(event), nil
}

func (s *EventService) List(ctx context.Context, filter entity.EventFilter) ([]*dto.EventResponse, error) {
	if filter.EventType != "" && !slices.Contains(model.EventTypes, filter.EventType) {
		return nil, domainErrors.ErrInvalidEventType
	}
	filter.Normalize()

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.EventsToResponses(events), nil
}

// Metrics counts events per type with distinct users and repositories in [since, until].
func (s *EventService) Metrics(ctx context.Context, since, until *time.Time) (*dto.EventMetricsResponse, error) {
	stats, err := s.eventRepo.Stats(ctx, since, until)
	if err != nil {
		return nil, err
	}
	return mapper.EventStatsToResponse(stats), nil
}

// QualityService stores per-file code quality records.
type QualityService struct {
	qualityRepo repository.CodeQualityRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewQualityService creates a new QualityService instance
func NewQualityService(qualityRepo repository.CodeQualityRepository, logger *zap.Logger) *QualityService {
	return &QualityService{
		qualityRepo: qualityRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *QualityService) Record(ctx context.Context, req *dto.CodeMetricRequest) (*dto.CodeMetricResponse, error) {
	mdate, err := parseOptionalDate(req.ModificationDate)
	if err != nil {
		return nil, err
	}

	metric := mapper.CodeMetricFromRequest(req, mdate)
	if err := s.qualityRepo.Create(ctx, metric); err != nil {
		return nil, err
	}
	return mapper.CodeMetricToResponse(metric), nil
}

// List returns records created in the trailing window, optionally for one repository.
func (s *QualityService) List(ctx context.Context, repo string, days int) ([]*dto.CodeMetricResponse, error) {
	if days <= 0 {
		return nil, domainErrors.ErrInvalidDays
	}

	rows, err := s.qualityRepo.List(ctx, repo, entity.WindowStart(s.now(), days))
	if err != nil {
		return nil, err
	}
	return mapper.CodeMetricsToResponses(rows), nil
}
