package repository

import (
	"context"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// KPIRepository defines storage operations for KPIs.
type KPIRepository interface {
	// List returns KPIs ordered by phase then name.
	List(ctx context.Context) ([]*model.KPI, error)
	GetByID(ctx context.Context, id uint) (*model.KPI, error)
	GetByName(ctx context.Context, name string) (*model.KPI, error)
	Create(ctx context.Context, kpi *model.KPI) error
	Update(ctx context.Context, kpi *model.KPI) error
	Delete(ctx context.Context, id uint) error
}
