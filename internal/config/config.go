package config

import (
	"fmt"

	pkgconfig "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/logger"
)

// ServiceName names the config file (configs/{env}/dashboard.yaml) and the env prefix (DASHBOARD_).
const ServiceName = "dashboard"

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Service   ServiceConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	GitHub    GitHubConfig
	Scheduler SchedulerConfig
	MCP       MCPConfig
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level       string
	Format      string
	Output      string
	FilePath    string
	Development bool
}

// Logger converts the section into pkg/logger settings.
func (c LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:       c.Level,
		Format:      c.Format,
		Output:      c.Output,
		FilePath:    c.FilePath,
		Development: c.Development,
	}
}

// MCPConfig toggles the attributed-action event log.
type MCPConfig struct {
	Enabled bool
}

var defaults = map[string]interface{}{
	"service.name":        ServiceName,
	"service.environment": "dev",
	"service.version":     "1.0.0",

	"server.http.host":            "0.0.0.0",
	"server.http.port":            8000,
	"server.http.allowed_origins": []string{"*"},

	"database.driver":             "sqlite",
	"database.path":               "./copilot_metrics.db",
	"database.host":               "localhost",
	"database.port":               5432,
	"database.name":               "copilot_metrics",
	"database.user":               "postgres",
	"database.sslmode":            "disable",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     5,
	"database.conn_max_lifetime":  "30m",
	"database.conn_max_idle_time": "5m",
	"database.slow_threshold":     "200ms",
	"database.seed_on_start":      false,

	"log.level":  "info",
	"log.format": "json",
	"log.output": "stdout",

	"github.base_url":    "https://api.github.com/",
	"github.timeout":     "30s",
	"github.per_page":    100,
	"github.email_domain": "",

	"scheduler.enabled":           false,
	"scheduler.maturity_schedule": "0 2 * * *",
	"scheduler.timezone":          "UTC",
	"scheduler.window_days":       30,

	"mcp.enabled": true,
}

// Load reads configuration from file and environment and maps it into Config.
func Load() (*Config, error) {
	src, err := pkgconfig.Load(ServiceName, pkgconfig.WithDefaults(defaults), pkgconfig.WithOptionalFile())
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// FromSource maps an already loaded source into Config and validates it.
func FromSource(src pkgconfig.Config) (*Config, error) {
	cfg := &Config{
		Service: ServiceConfig{
			Name:        src.GetString("service.name"),
			Environment: src.GetString("service.environment"),
			Version:     src.GetString("service.version"),
		},
		Server: ServerConfig{
			HTTP: HTTPConfig{
				Host:           src.GetString("server.http.host"),
				Port:           src.GetInt("server.http.port"),
				AllowedOrigins: src.GetStringSlice("server.http.allowed_origins"),
			},
		},
		Database: DatabaseConfig{
			Driver:          src.GetString("database.driver"),
			Path:            src.GetString("database.path"),
			Host:            src.GetString("database.host"),
			Port:            src.GetInt("database.port"),
			Name:            src.GetString("database.name"),
			User:            src.GetString("database.user"),
			Password:        src.GetString("database.password"),
			SSLMode:         src.GetString("database.sslmode"),
			MaxOpenConns:    src.GetInt("database.max_open_conns"),
			MaxIdleConns:    src.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: src.GetDuration("database.conn_max_lifetime"),
			ConnMaxIdleTime: src.GetDuration("database.conn_max_idle_time"),
			SlowThreshold:   src.GetDuration("database.slow_threshold"),
			SeedOnStart:     src.GetBool("database.seed_on_start"),
			SeedFile:        src.GetString("database.seed_file"),
		},
		Log: LogConfig{
			Level:       src.GetString("log.level"),
			Format:      src.GetString("log.format"),
			Output:      src.GetString("log.output"),
			FilePath:    src.GetString("log.file_path"),
			Development: src.GetBool("log.development"),
		},
		GitHub: GitHubConfig{
			BaseURL:     src.GetString("github.base_url"),
			Timeout:     src.GetDuration("github.timeout"),
			PerPage:     src.GetInt("github.per_page"),
			EmailDomain: src.GetString("github.email_domain"),
			Token:       src.GetString("github.token"),
			Org:         src.GetString("github.org"),
		},
		Scheduler: SchedulerConfig{
			Enabled:          src.GetBool("scheduler.enabled"),
			MaturitySchedule: src.GetString("scheduler.maturity_schedule"),
			Timezone:         src.GetString("scheduler.timezone"),
			WindowDays:       src.GetInt("scheduler.window_days"),
		},
		MCP: MCPConfig{
			Enabled: src.GetBool("mcp.enabled"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	if c.Server.HTTP.Port <= 0 || c.Server.HTTP.Port > 65535 {
		return fmt.Errorf("server.http.port out of range: %d", c.Server.HTTP.Port)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.GitHub.PerPage <= 0 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github.per_page must be within 1..100, got %d", c.GitHub.PerPage)
	}
	if c.Scheduler.WindowDays <= 0 {
		return fmt.Errorf("scheduler.window_days must be positive")
	}
	return nil
}
