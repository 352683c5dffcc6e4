package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// Models lists every table owned by the service in creation order.
func Models() []interface{} {
	return []interface{}{
		&model.Organization{},
		&model.User{},
		&model.DailyMetrics{},
		&model.UserActivityLog{},
		&model.KPI{},
		&model.MCPEvent{},
		&model.CodeQualityMetric{},
	}
}

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(Models()...); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes adds the range-scan indexes gorm tags do not express.
func createCustomIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_daily_metrics_date ON daily_metrics (date)`,
		`CREATE INDEX IF NOT EXISTS idx_user_activity_logs_date ON user_activity_logs (date)`,
		`CREATE INDEX IF NOT EXISTS idx_mcp_events_timestamp ON mcp_events (event_timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_code_quality_metrics_created_at ON code_quality_metrics (created_at)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
