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

type activityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewActivityRepository creates a new user activity repository
func NewActivityRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ActivityRepository {
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityRepository) ListForUser(ctx context.Context, userID uint, since time.Time) ([]*model.UserActivityLog, error) {
	var logs []*model.UserActivityLog

	err := conn(ctx, r.db).
		Where("user_id = ? AND date >= ?", userID, entity.Day(since)).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		r.logger.Error("Failed to list user activity", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list user activity: %w", err)
	}

	return logs, nil
}

func (r *activityRepository) ListForOrganization(ctx context.Context, orgID *uint, since time.Time) ([]*model.UserActivityLog, error) {
	var logs []*model.UserActivityLog

	query := conn(ctx, r.db).Where("date >= ?", entity.Day(since))
	if orgID != nil {
		query = query.Where("user_id IN (?)",
			conn(ctx, r.db).Model(&model.User{}).Select("id").Where("organization_id = ?", *orgID))
	}

	if err := query.Order("user_id ASC").Order("date DESC").Find(&logs).Error; err != nil {
		r.logger.Error("Failed to list organization activity", zap.Error(err))
		return nil, fmt.Errorf("failed to list organization activity: %w", err)
	}

	return logs, nil
}

func (r *activityRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.UserActivityLog, error) {
	var log model.UserActivityLog

	err := conn(ctx, r.db).
		Where("user_id = ? AND date = ?", userID, entity.Day(date)).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user activity",
			zap.Uint("user_id", userID),
			zap.Time("date", date),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get user activity: %w", err)
	}

	return &log, nil
}

func (r *activityRepository) Create(ctx context.Context, log *model.UserActivityLog) error {
	log.Date = entity.Day(log.Date)
	if err := conn(ctx, r.db).Create(log).Error; err != nil {
		r.logger.Error("Failed to create user activity", zap.Uint("user_id", log.UserID), zap.Error(err))
		return fmt.Errorf("failed to create user activity: %w", err)
	}
	return nil
}

func (r *activityRepository) Update(ctx context.Context, log *model.UserActivityLog) error {
	log.Date = entity.Day(log.Date)
	if err := conn(ctx, r.db).Save(log).Error; err != nil {
		r.logger.Error("Failed to update user activity", zap.Uint("id", log.ID), zap.Error(err))
		return fmt.Errorf("failed to update user activity: %w", err)
	}
	return nil
}

func (r *activityRepository) DeleteForUser(ctx context.Context, userID uint) error {
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Delete(&model.UserActivityLog{}).Error; err != nil {
		r.logger.Error("Failed to delete user activity", zap.Uint("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to delete user activity: %w", err)
	}
	return nil
}

func (r *activityRepository) DeleteForOrganization(ctx context.Context, orgID uint) error {
	err := conn(ctx, r.db).
		Where("user_id IN (?)", conn(ctx, r.db).Model(&model.User{}).Select("id").Where("organization_id = ?", orgID)).
		Delete(&model.UserActivityLog{}).Error
	if err != nil {
		r.logger.Error("Failed to delete organization activity", zap.Uint("organization_id", orgID), zap.Error(err))
		return fmt.Errorf("failed to delete organization activity: %w", err)
	}
	return nil
}
