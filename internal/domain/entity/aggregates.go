package entity

// UserCounts are headline user counts for an organization (or all).
type UserCounts struct {
	Total        int64
	Enabled      int64
	WeeklyActive int64
	// Consistent counts enabled users at L4 or above.
	Consistent int64
}

// TeamStat aggregates users of one team.
type TeamStat struct {
	Team        string
	Total       int64
	Enabled     int64
	Active      int64
	AvgMaturity float64
}

// UnassignedTeam labels users without a team.
const UnassignedTeam = "Unassigned"

// CommitTotals sums commit counters over a window.
type CommitTotals struct {
	AIAssisted int64
	Total      int64
}

// EventStats summarises MCP events over a period.
type EventStats struct {
	Total              int64
	ByType             map[string]int64
	UniqueUsers        int64
	UniqueRepositories int64
}
