package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/repository"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
)

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *domainRepo.Repositories {
	return &domainRepo.Repositories{
		Organization: repository.NewOrganizationRepository(db, logger),
		User:         repository.NewUserRepository(db, logger),
		Metrics:      repository.NewMetricsRepository(db, logger),
		Activity:     repository.NewActivityRepository(db, logger),
		KPI:          repository.NewKPIRepository(db, logger),
		Event:        repository.NewEventRepository(db, logger),
		CodeQuality:  repository.NewCodeQualityRepository(db, logger),
		Tx:           repository.NewTransactionManager(db, logger),
	}
}
