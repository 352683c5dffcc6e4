package repository

import (
	"context"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// MetricsRepository defines storage operations for daily metrics.
type MetricsRepository interface {
	// List returns rows with date >= filter.Since, ascending by date.
	List(ctx context.Context, filter entity.MetricsFilter) ([]*model.DailyMetrics, error)
	// Latest returns the row with the greatest date, or nil.
	Latest(ctx context.Context, orgID *uint) (*model.DailyMetrics, error)
	GetByID(ctx context.Context, id uint) (*model.DailyMetrics, error)
	GetByOrgAndDate(ctx context.Context, orgID uint, date time.Time) (*model.DailyMetrics, error)
	Create(ctx context.Context, metrics *model.DailyMetrics) error
	Update(ctx context.Context, metrics *model.DailyMetrics) error
	Delete(ctx context.Context, id uint) error
	DeleteByOrganization(ctx context.Context, orgID uint) error
	SumCommits(ctx context.Context, filter entity.MetricsFilter) (*entity.CommitTotals, error)
}
