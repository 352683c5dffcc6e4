package dto

// DefaultSyncDays is the usage history requested when days is omitted.
const DefaultSyncDays = 30

// SyncRequest starts a GitHub sync. The token is used for this request only and never stored.
type SyncRequest struct {
	Token        string `json:"token" validate:"required"`
	Org          string `json:"org" validate:"required,max=255"`
	SyncUsers    *bool  `json:"sync_users"`
	SyncMetrics  *bool  `json:"sync_metrics"`
	Days         int    `json:"days" validate:"gte=0,lte=100"`
	WithProfiles bool   `json:"with_profiles"`
}

// SetDefaults fills omitted flags.
func (r *SyncRequest) SetDefaults() {
	if r.SyncUsers == nil {
		v := true
		r.SyncUsers = &v
	}
	if r.SyncMetrics == nil {
		v := true
		r.SyncMetrics = &v
	}
	if r.Days == 0 {
		r.Days = DefaultSyncDays
	}
}

type SyncResponse struct {
	Success              bool             `json:"success"`
	Message              string           `json:"message"`
	SyncID               string           `json:"sync_id"`
	OrgName              string           `json:"org_name,omitempty"`
	UsersSynced          int              `json:"users_synced"`
	MetricsSynced        int              `json:"metrics_synced"`
	Warnings             []string         `json:"warnings"`
	MaturityDistribution map[string]int64 `json:"maturity_distribution,omitempty"`
}

type TestConnectionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	MembersCount int    `json:"members_count"`
}
