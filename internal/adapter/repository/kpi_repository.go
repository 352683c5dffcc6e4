package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type kpiRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewKPIRepository creates a new KPI repository
func NewKPIRepository(db *gorm.DB, logger *zap.Logger) domainRepo.KPIRepository {
	return &kpiRepository{
		db:     db,
		logger: logger,
	}
}

func (r *kpiRepository) List(ctx context.Context) ([]*model.KPI, error) {
	var kpis []*model.KPI

	if err := conn(ctx, r.db).Order("phase ASC").Order("name ASC").Find(&kpis).Error; err != nil {
		r.logger.Error("Failed to list KPIs", zap.Error(err))
		return nil, fmt.Errorf("failed to list KPIs: %w", err)
	}

	return kpis, nil
}

func (r *kpiRepository) GetByID(ctx context.Context, id uint) (*model.KPI, error) {
	var kpi model.KPI

	err := conn(ctx, r.db).Where("id = ?", id).First(&kpi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get KPI", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get KPI: %w", err)
	}

	return &kpi, nil
}

func (r *kpiRepository) GetByName(ctx context.Context, name string) (*model.KPI, error) {
	var kpi model.KPI

	err := conn(ctx, r.db).Where("name = ?", name).First(&kpi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get KPI by name", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to get KPI: %w", err)
	}

	return &kpi, nil
}

func (r *kpiRepository) Create(ctx context.Context, kpi *model.KPI) error {
	if err := conn(ctx, r.db).Create(kpi).Error; err != nil {
		r.logger.Error("Failed to create KPI", zap.String("name", kpi.Name), zap.Error(err))
		return fmt.Errorf("failed to create KPI: %w", err)
	}
	return nil
}

func (r *kpiRepository) Update(ctx context.Context, kpi *model.KPI) error {
	if err := conn(ctx, r.db).Save(kpi).Error; err != nil {
		r.logger.Error("Failed to update KPI", zap.Uint("id", kpi.ID), zap.Error(err))
		return fmt.Errorf("failed to update KPI: %w", err)
	}
	return nil
}

func (r *kpiRepository) Delete(ctx context.Context, id uint) error {
	if err := conn(ctx, r.db).Delete(&model.KPI{}, id).Error; err != nil {
		r.logger.Error("Failed to delete KPI", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete KPI: %w", err)
	}
	return nil
}
