package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
)

// Handlers groups every HTTP handler of the API. MCP may be nil to leave its routes unregistered.
type Handlers struct {
	Health       *HealthHandler
	Organization *OrganizationHandler
	User         *UserHandler
	Metrics      *MetricsHandler
	Dashboard    *DashboardHandler
	KPI          *KPIHandler
	GitHub       *GitHubHandler
	MCP          *MCPHandler
	Quality      *QualityHandler
}

// NewHandlers builds every handler over services. The MCP handler is left out unless enableMCP is set.
func NewHandlers(services *usecase.Services, serviceName, version string, enableMCP bool, logger *zap.Logger) *Handlers {
	h := &Handlers{
		Health:       NewHealthHandler(serviceName, version),
		Organization: NewOrganizationHandler(services.Organization, logger),
		User:         NewUserHandler(services.User, logger),
		Metrics:      NewMetricsHandler(services.Metrics, logger),
		Dashboard:    NewDashboardHandler(services.Dashboard, logger),
		KPI:          NewKPIHandler(services.KPI, logger),
		GitHub:       NewGitHubHandler(services.Sync, logger),
		Quality:      NewQualityHandler(services.Quality, logger),
	}
	if enableMCP {
		h.MCP = NewMCPHandler(services.Event, logger)
	}
	return h
}

// RegisterRoutes mounts the API on e.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/", h.Health.Root)
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")
	api.GET("/health", h.Health.Health)

	orgs := api.Group("/organizations")
	orgs.GET("", h.Organization.List)
	orgs.POST("", h.Organization.Create)
	orgs.GET("/:id", h.Organization.Get)
	orgs.PUT("/:id", h.Organization.Update)
	orgs.DELETE("/:id", h.Organization.Delete)

	users := api.Group("/users")
	users.GET("", h.User.List)
	users.POST("", h.User.Create)
	users.GET("/stats/by-team", h.User.TeamStats)
	users.GET("/stats/by-maturity", h.User.MaturityStats)
	users.POST("/maturity/recompute", h.User.RecomputeMaturity)
	users.GET("/:id", h.User.Get)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", h.User.Delete)
	users.GET("/:id/activity", h.User.ListActivity)
	users.POST("/:id/activity", h.User.RecordActivity)

	metrics := api.Group("/metrics")
	metrics.GET("", h.Metrics.List)
	metrics.POST("", h.Metrics.Upsert)
	metrics.GET("/latest", h.Metrics.Latest)
	metrics.GET("/adoption", h.Metrics.Adoption)
	metrics.GET("/productivity", h.Metrics.Productivity)
	metrics.GET("/quality", h.Metrics.Quality)
	metrics.DELETE("/:id", h.Metrics.Delete)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.Summary)
	dashboard.GET("/trends", h.Dashboard.Trends)
	dashboard.GET("/maturity-distribution", h.Dashboard.MaturityDistribution)
	dashboard.GET("/team-breakdown", h.Dashboard.TeamBreakdown)
	dashboard.GET("/kpis", h.Dashboard.KPIs)

	kpis := api.Group("/kpis")
	kpis.GET("", h.KPI.List)
	kpis.POST("", h.KPI.Create)
	kpis.POST("/refresh", h.KPI.Refresh)
	kpis.PUT("/:id", h.KPI.Update)
	kpis.DELETE("/:id", h.KPI.Delete)

	github := api.Group("/github")
	github.POST("/sync", h.GitHub.Sync)
	github.GET("/test-connection", h.GitHub.TestConnection)

	quality := api.Group("/quality")
	quality.POST("/code-metrics", h.Quality.RecordCodeMetric)
	quality.GET("/code-metrics", h.Quality.ListCodeMetrics)

	if h.MCP != nil {
		mcp := api.Group("/mcp")
		mcp.POST("/events", h.MCP.RecordEvent)
		mcp.GET("/events", h.MCP.ListEvents)
		mcp.GET("/metrics", h.MCP.Metrics)
	}
}
