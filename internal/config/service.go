package config

import "time"

type ServiceConfig struct {
	Name        string
	Environment string
	Version     string
}

// GitHubConfig configures the Copilot data source client.
// Token and Org are only read by the sync CLI; the HTTP sync endpoint takes them per request.
type GitHubConfig struct {
	BaseURL     string
	Timeout     time.Duration
	PerPage     int
	EmailDomain string
	Token       string
	Org         string
}

// SchedulerConfig configures the periodic maturity/KPI recompute job.
type SchedulerConfig struct {
	Enabled          bool
	MaturitySchedule string
	Timezone         string
	WindowDays       int
}
