package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type eventRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEventRepository creates a new MCP event repository
func NewEventRepository(db *gorm.DB, logger *zap.Logger) domainRepo.EventRepository {
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *model.MCPEvent) error {
	if err := conn(ctx, r.db).Create(event).Error; err != nil {
		r.logger.Error("Failed to create MCP event",
			zap.String("event_type", event.EventType),
			zap.String("repository", event.Repository),
			zap.Error(err))
		return fmt.Errorf("failed to create MCP event: %w", err)
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, filter entity.EventFilter) ([]*model.MCPEvent, error) {
	filter.Normalize()

	query := periodScope(conn(ctx, r.db).Model(&model.MCPEvent{}), filter.Since, filter.Until)
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Username != "" {
		query = query.Where("github_username = ?", filter.Username)
	}
	if filter.Repository != "" {
		query = query.Where("repository = ?", filter.Repository)
	}

	var events []*model.MCPEvent
	if err := query.Order("event_timestamp DESC").Order("id DESC").Limit(filter.Limit).Find(&events).Error; err != nil {
		r.logger.Error("Failed to list MCP events", zap.Error(err))
		return nil, fmt.Errorf("failed to list MCP events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Stats(ctx context.Context, since, until *time.Time) (*entity.EventStats, error) {
	stats := &entity.EventStats{ByType: map[string]int64{}}

	var rows []struct {
		EventType string
		Count     int64
	}
	err := periodScope(conn(ctx, r.db).Model(&model.MCPEvent{}), since, until).
		Select("event_type, COUNT(*) AS count").
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to count MCP events by type", zap.Error(err))
		return nil, fmt.Errorf("failed to count MCP events: %w", err)
	}
	for _, row := range rows {
		stats.ByType[row.EventType] = row.Count
		stats.Total += row.Count
	}

	err = periodScope(conn(ctx, r.db).Model(&model.MCPEvent{}), since, until).
		Where("github_username <> ''").
		Distinct("github_username").
		Count(&stats.UniqueUsers).Error
	if err != nil {
		r.logger.Error("Failed to count MCP event users", zap.Error(err))
		return nil, fmt.Errorf("failed to count MCP event users: %w", err)
	}

	err = periodScope(conn(ctx, r.db).Model(&model.MCPEvent{}), since, until).
		Where("repository <> ''").
		Distinct("repository").
		Count(&stats.UniqueRepositories).Error
	if err != nil {
		r.logger.Error("Failed to count MCP event repositories", zap.Error(err))
		return nil, fmt.Errorf("failed to count MCP event repositories: %w", err)
	}

	return stats, nil
}

func periodScope(query *gorm.DB, since, until *time.Time) *gorm.DB {
	if since != nil {
		query = query.Where("event_timestamp >= ?", *since)
	}
	if until != nil {
		query = query.Where("event_timestamp <= ?", *until)
	}
	return query
}

type codeQualityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCodeQualityRepository creates a new code quality repository
func NewCodeQualityRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CodeQualityRepository {
	return &codeQualityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *codeQualityRepository) Create(ctx context.Context, metric *model.CodeQualityMetric) error {
	if err := conn(ctx, r.db).Create(metric).Error; err != nil {
		r.logger.Error("Failed to create code quality record",
			zap.String("repository", metric.Repository),
			zap.String("commit_sha", metric.CommitSHA),
			zap.Error(err))
		return fmt.Errorf("failed to create code quality record: %w", err)
	}
	return nil
}

func (r *codeQualityRepository) List(ctx context.Context, repository string, since time.Time) ([]*model.CodeQualityMetric, error) {
	query := conn(ctx, r.db).Where("created_at >= ?", since)
	if repository != "" {
		query = query.Where("repository = ?", repository)
	}

	var metrics []*model.CodeQualityMetric
	if err := query.Order("created_at DESC").Order("id DESC").Find(&metrics).Error; err != nil {
		r.logger.Error("Failed to list code quality records", zap.Error(err))
		return nil, fmt.Errorf("failed to list code quality records: %w", err)
	}

	return metrics, nil
}
