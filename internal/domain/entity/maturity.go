package entity

import (
	"fmt"
	"time"
)

// MaturityLevel is a user's engagement depth, L0 (not enabled) to L5 (value user).
type MaturityLevel int

const (
	LevelNotEnabled MaturityLevel = iota
	LevelEnabled
	LevelActive
	LevelWorking
	LevelConsistent
	LevelValue
)

// MinLevel and MaxLevel bound every stored maturity level.
const (
	MinLevel = LevelNotEnabled
	MaxLevel = LevelValue
)

// Classification thresholds over the trailing activity window.
const (
	ActiveDaysForWorking    = 5
	ActiveDaysForConsistent = 15
	ValueAcceptancePercent  = 30.0
	MaturityWindowDays      = 30
	WeeklyWindowDays        = 7
)

// LevelInfo is the display metadata of a level.
type LevelInfo struct {
	Level       MaturityLevel
	Name        string
	Description string
	Color       string
}

var levelInfo = [...]LevelInfo{
	{LevelNotEnabled, "L0", "Not Enabled", "#ea4335"},
	{LevelEnabled, "L1", "Enabled", "#fbbc05"},
	{LevelActive, "L2", "Active User", "#34a853"},
	{LevelWorking, "L3", "Working User", "#4285f4"},
	{LevelConsistent, "L4", "Consistent User", "#9c27b0"},
	{LevelValue, "L5", "Value User", "#00bcd4"},
}

// Levels returns the metadata of all six levels in ascending order.
func Levels() []LevelInfo {
	out := make([]LevelInfo, len(levelInfo))
	copy(out, levelInfo[:])
	return out
}

func (l MaturityLevel) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l MaturityLevel) Info() LevelInfo {
	if !l.Valid() {
		return LevelInfo{Level: l, Name: fmt.Sprintf("L%d", int(l)), Color: "#666"}
	}
	return levelInfo[l]
}

// Label renders "L3 - Working User".
func (l MaturityLevel) Label() string {
	info := l.Info()
	if info.Description == "" {
		return info.Name
	}
	return info.Name + " - " + info.Description
}

// ClassifyMaturity maps enablement and trailing-window activity to a level.
// Rules are evaluated in order and the first match wins; an enabled user with
// no active days is L1 whatever the acceptance rate.
func ClassifyMaturity(enabled bool, activeDays int, acceptanceRatePercent float64) MaturityLevel {
	switch {
	case !enabled:
		return LevelNotEnabled
	case activeDays <= 0:
		return LevelEnabled
	case activeDays < ActiveDaysForWorking:
		return LevelActive
	case activeDays < ActiveDaysForConsistent:
		return LevelWorking
	case acceptanceRatePercent < ValueAcceptancePercent:
		return LevelConsistent
	default:
		return LevelValue
	}
}

// ReconcileLevel keeps a stored level consistent with enablement: users without
// Copilot are L0 and enabled users are at least L1.
func ReconcileLevel(enabled bool, level MaturityLevel) MaturityLevel {
	switch {
	case !enabled:
		return LevelNotEnabled
	case level < LevelEnabled:
		return LevelEnabled
	default:
		return level
	}
}

// ActivityDay is the subset of a daily activity row the classifier needs.
type ActivityDay struct {
	Date                time.Time
	SuggestionsShown    int
	SuggestionsAccepted int
}

// ActivitySummary reduces a user's activity rows over a trailing window.
type ActivitySummary struct {
	ActiveDays            int
	AcceptanceRatePercent float64
	WeeklyActive          bool
	LastActivity          *time.Time
}

// SummarizeActivity counts distinct active days within [today-windowDays, today]
// and flags weekly activity within the trailing seven days. Any logged row counts
// as activity for its day.
func SummarizeActivity(days []ActivityDay, today time.Time, windowDays int) ActivitySummary {
	today = Day(today)
	windowStart := today.AddDate(0, 0, -windowDays)
	weekStart := today.AddDate(0, 0, -WeeklyWindowDays)

	seen := make(map[time.Time]struct{})
	var shown, accepted int
	var summary ActivitySummary

	for _, d := range days {
		day := Day(d.Date)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		seen[day] = struct{}{}
		shown += d.SuggestionsShown
		accepted += d.SuggestionsAccepted
		if !day.Before(weekStart) {
			summary.WeeklyActive = true
		}
		if summary.LastActivity == nil || day.After(*summary.LastActivity) {
			last := day
			summary.LastActivity = &last
		}
	}

	summary.ActiveDays = len(seen)
	summary.AcceptanceRatePercent = Percent(accepted, shown)
	return summary
}

// MaturityUpdate is the outcome of recomputing a user.
type MaturityUpdate struct {
	Level           MaturityLevel
	IsWeeklyActive  bool
	IsMonthlyActive bool
	LastActivity    *time.Time
}

// RecomputeMaturity classifies a user and derives the activity flags.
func RecomputeMaturity(enabled bool, summary ActivitySummary) MaturityUpdate {
	return MaturityUpdate{
		Level:           ClassifyMaturity(enabled, summary.ActiveDays, summary.AcceptanceRatePercent),
		IsWeeklyActive:  summary.WeeklyActive,
		IsMonthlyActive: summary.ActiveDays > 0,
		LastActivity:    summary.LastActivity,
	}
}
