package repository

// Repositories bundles every store the use cases depend on.
type Repositories struct {
	Organization OrganizationRepository
	User         UserRepository
	Metrics      MetricsRepository
	Activity     ActivityRepository
	KPI          KPIRepository
	Event        EventRepository
	CodeQuality  CodeQualityRepository
	Tx           TransactionManager
}
