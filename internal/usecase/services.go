package usecase

import (
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
)

// Services is every use case wired over one set of repositories.
type Services struct {
	Organization *OrganizationService
	User         *UserService
	Maturity     *MaturityService
	Metrics      *MetricsService
	KPI          *KPIService
	Dashboard    *DashboardService
	Sync         *SyncService
	Event        *EventService
	Quality      *QualityService
}

// NewServices builds the use cases. recorder may be nil.
func NewServices(
	repos *repository.Repositories,
	factory provider.Factory,
	recorder SyncRecorder,
	syncConfig SyncConfig,
	logger *zap.Logger,
) *Services {
	maturity := NewMaturityService(repos.User, repos.Activity, logger)
	kpi := NewKPIService(repos.KPI, repos.User, repos.Metrics, repos.Tx, logger)

	return &Services{
		Organization: NewOrganizationService(repos.Organization, repos.User, repos.Metrics, repos.Activity, repos.Tx, logger),
		User:         NewUserService(repos.User, repos.Organization, repos.Activity, maturity, repos.Tx, logger),
		Maturity:     maturity,
		Metrics:      NewMetricsService(repos.Metrics, repos.Organization, repos.Tx, logger),
		KPI:          kpi,
		Dashboard:    NewDashboardService(repos.User, repos.Metrics, kpi, logger),
		Sync:         NewSyncService(factory, repos.Organization, repos.User, repos.Metrics, maturity, repos.Tx, recorder, syncConfig, logger),
		Event:        NewEventService(repos.Event, logger),
		Quality:      NewQualityService(repos.CodeQuality, logger),
	}
}
