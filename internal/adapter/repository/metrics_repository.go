package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type metricsRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMetricsRepository creates a new daily metrics repository
func NewMetricsRepository(db *gorm.DB, logger *zap.Logger) domainRepo.MetricsRepository {
	return &metricsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *metricsRepository) window(ctx context.Context, filter entity.MetricsFilter) *gorm.DB {
	query := conn(ctx, r.db).Model(&model.DailyMetrics{}).Scopes(orgScope(filter.OrganizationID))
	if !filter.Since.IsZero() {
		query = query.Where("date >= ?", entity.Day(filter.Since))
	}
	return query
}

func (r *metricsRepository) List(ctx context.Context, filter entity.MetricsFilter) ([]*model.DailyMetrics, error) {
	var rows []*model.DailyMetrics

	if err := r.window(ctx, filter).Order("date ASC").Order("id ASC").Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list daily metrics", zap.Error(err))
		return nil, fmt.Errorf("failed to list daily metrics: %w", err)
	}

	return rows, nil
}

func (r *metricsRepository) Latest(ctx context.Context, orgID *uint) (*model.DailyMetrics, error) {
	var row model.DailyMetrics

	err := conn(ctx, r.db).
		Scopes(orgScope(orgID)).
		Order("date DESC").
		Order("id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get latest metrics", zap.Error(err))
		return nil, fmt.Errorf("failed to get latest metrics: %w", err)
	}

	return &row, nil
}

func (r *metricsRepository) GetByID(ctx context.Context, id uint) (*model.DailyMetrics, error) {
	var row model.DailyMetrics

	err := conn(ctx, r.db).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get metrics", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}

	return &row, nil
}

func (r *metricsRepository) GetByOrgAndDate(ctx context.Context, orgID uint, date time.Time) (*model.DailyMetrics, error) {
	var row model.DailyMetrics

	err := conn(ctx, r.db).
		Where("organization_id = ? AND date = ?", orgID, entity.Day(date)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get metrics by date",
			zap.Uint("organization_id", orgID),
			zap.Time("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}

	return &row, nil
}

func (r *metricsRepository) Create(ctx context.Context, metrics *model.DailyMetrics) error {
	metrics.Date = entity.Day(metrics.Date)
	if err := conn(ctx, r.db).Create(metrics).Error; err != nil {
		r.logger.Error("Failed to create metrics",
			zap.Uint("organization_id", metrics.OrganizationID),
			zap.Time("date", metrics.Date),
			zap.Error(err))
		return fmt.Errorf("failed to create metrics: %w", err)
	}
	return nil
}

func (r *metricsRepository) Update(ctx context.Context, metrics *model.DailyMetrics) error {
	metrics.Date = entity.Day(metrics.Date)
	if err := conn(ctx, r.db).Save(metrics).Error; err != nil {
		r.logger.Error("Failed to update metrics", zap.Uint("id", metrics.ID), zap.Error(err))
		return fmt.Errorf("failed to update metrics: %w", err)
	}
	return nil
}

func (r *metricsRepository) Delete(ctx context.Context, id uint) error {
	if err := conn(ctx, r.db).Delete(&model.DailyMetrics{}, id).Error; err != nil {
		r.logger.Error("Failed to delete metrics", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete metrics: %w", err)
	}
	return nil
}

func (r *metricsRepository) DeleteByOrganization(ctx context.Context, orgID uint) error {
	if err := conn(ctx, r.db).Where("organization_id = ?", orgID).Delete(&model.DailyMetrics{}).Error; err != nil {
		r.logger.Error("Failed to delete organization metrics", zap.Uint("organization_id", orgID), zap.Error(err))
		return fmt.Errorf("failed to delete metrics: %w", err)
	}
	return nil
}

func (r *metricsRepository) SumCommits(ctx context.Context, filter entity.MetricsFilter) (*entity.CommitTotals, error) {
	var row struct {
		AIAssisted int64
		Total      int64
	}

	err := r.window(ctx, filter).
		Select("COALESCE(SUM(ai_assisted_commits), 0) AS ai_assisted, COALESCE(SUM(total_commits), 0) AS total").
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to sum commits", zap.Error(err))
		return nil, fmt.Errorf("failed to sum commits: %w", err)
	}

	return &entity.CommitTotals{AIAssisted: row.AIAssisted, Total: row.Total}, nil
}
