package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) domainRepo.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*model.User, error) {
	var users []*model.User

	query := conn(ctx, r.db).Scopes(orgScope(filter.OrganizationID))
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.MaturityLevel != nil {
		query = query.Where("maturity_level = ?", *filter.MaturityLevel)
	}
	if filter.ActiveOnly {
		query = query.Where("is_weekly_active = ?", true)
	}

	if err := query.Order("github_username ASC").Find(&users).Error; err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User

	err := conn(ctx, r.db).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	err := conn(ctx, r.db).Where("github_username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user by username",
			zap.String("github_username", username),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := conn(ctx, r.db).Create(user).Error; err != nil {
		r.logger.Error("Failed to create user",
			zap.String("github_username", user.GithubUsername),
			zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if err := conn(ctx, r.db).Save(user).Error; err != nil {
		r.logger.Error("Failed to update user", zap.Uint("id", user.ID), zap.Error(err))
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	if err := conn(ctx, r.db).Delete(&model.User{}, id).Error; err != nil {
		r.logger.Error("Failed to delete user", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *userRepository) DeleteByOrganization(ctx context.Context, orgID uint) error {
	if err := conn(ctx, r.db).Where("organization_id = ?", orgID).Delete(&model.User{}).Error; err != nil {
		r.logger.Error("Failed to delete organization users", zap.Uint("organization_id", orgID), zap.Error(err))
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateMaturity(ctx context.Context, id uint, update entity.MaturityUpdate) error {
	err := conn(ctx, r.db).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"maturity_level":     int(update.Level),
			"is_weekly_active":   update.IsWeeklyActive,
			"is_monthly_active":  update.IsMonthlyActive,
			"last_activity_date": update.LastActivity,
		}).Error
	if err != nil {
		r.logger.Error("Failed to update user maturity", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to update user maturity: %w", err)
	}
	return nil
}

func (r *userRepository) Counts(ctx context.Context, orgID *uint) (*entity.UserCounts, error) {
	var row struct {
		Total        int64
		Enabled      int64
		WeeklyActive int64
		Consistent   int64
	}

	err := conn(ctx, r.db).
		Model(&model.User{}).
		Scopes(orgScope(orgID)).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN copilot_enabled THEN 1 ELSE 0 END), 0) AS enabled, " +
			"COALESCE(SUM(CASE WHEN is_weekly_active THEN 1 ELSE 0 END), 0) AS weekly_active, " +
			"COALESCE(SUM(CASE WHEN copilot_enabled AND maturity_level >= ? THEN 1 ELSE 0 END), 0) AS consistent",
			int(entity.LevelConsistent)).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &entity.UserCounts{
		Total:        row.Total,
		Enabled:      row.Enabled,
		WeeklyActive: row.WeeklyActive,
		Consistent:   row.Consistent,
	}, nil
}

func (r *userRepository) CountByMaturity(ctx context.Context, orgID *uint) (map[int]int64, error) {
	var rows []struct {
		MaturityLevel int
		Count         int64
	}

	err := conn(ctx, r.db).
		Model(&model.User{}).
		Scopes(orgScope(orgID)).
		Select("maturity_level, COUNT(*) AS count").
		Group("maturity_level").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to count users by maturity", zap.Error(err))
		return nil, fmt.Errorf("failed to count users by maturity: %w", err)
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.MaturityLevel] = row.Count
	}
	return counts, nil
}

const teamExpr = "COALESCE(NULLIF(team, ''), '" + entity.UnassignedTeam + "')"

func (r *userRepository) TeamStats(ctx context.Context, orgID *uint) ([]entity.TeamStat, error) {
	var rows []struct {
		TeamName    string
		Total       int64
		Enabled     int64
		Active      int64
		AvgMaturity float64
	}

	err := conn(ctx, r.db).
		Model(&model.User{}).
		Scopes(orgScope(orgID)).
		Select(teamExpr + " AS team_name, COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN copilot_enabled THEN 1 ELSE 0 END), 0) AS enabled, " +
			"COALESCE(SUM(CASE WHEN is_weekly_active THEN 1 ELSE 0 END), 0) AS active, " +
			"COALESCE(AVG(maturity_level), 0) AS avg_maturity").
		Group(teamExpr).
		Order("team_name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to aggregate users by team", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate users by team: %w", err)
	}

	stats := make([]entity.TeamStat, len(rows))
	for i, row := range rows {
		stats[i] = entity.TeamStat{
			Team:        row.TeamName,
			Total:       row.Total,
			Enabled:     row.Enabled,
			Active:      row.Active,
			AvgMaturity: row.AvgMaturity,
		}
	}
	return stats, nil
}
