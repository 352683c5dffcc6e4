package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
)

func TestClassifyMaturity(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		activeDays int
		acceptance float64
		want       entity.MaturityLevel
	}{
		{"disabled user is L0", false, 20, 90, entity.LevelNotEnabled},
		{"disabled user without activity is L0", false, 0, 0, entity.LevelNotEnabled},
		{"enabled without activity is L1", true, 0, 0, entity.LevelEnabled},
		{"enabled without activity ignores high acceptance", true, 0, 99, entity.LevelEnabled},
		{"one active day is L2", true, 1, 0, entity.LevelActive},
		{"three active days is L2", true, 3, 80, entity.LevelActive},
		{"five active days is L3", true, 5, 80, entity.LevelWorking},
		{"fourteen active days is L3", true, 14, 80, entity.LevelWorking},
		{"twenty days with low acceptance is L4", true, 20, 25, entity.LevelConsistent},
		{"acceptance just below threshold is L4", true, 15, 29.99, entity.LevelConsistent},
		{"acceptance at threshold is L5", true, 15, 30, entity.LevelValue},
		{"twenty days with high acceptance is L5", true, 20, 45, entity.LevelValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entity.ClassifyMaturity(tt.enabled, tt.activeDays, tt.acceptance)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestClassifyMaturity_AlwaysInRange(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		for days := -1; days <= 31; days++ {
			for _, rate := range []float64{0, 10, 29.9, 30, 50, 100} {
				level := entity.ClassifyMaturity(enabled, days, rate)
				assert.True(t, level.Valid())
				if !enabled {
					assert.Equal(t, entity.LevelNotEnabled, level)
				}
			}
		}
	}
}

func TestReconcileLevel(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		level   entity.MaturityLevel
		want    entity.MaturityLevel
	}{
		{"disabled L3 drops to L0", false, entity.LevelWorking, entity.LevelNotEnabled},
		{"disabled L0 stays L0", false, entity.LevelNotEnabled, entity.LevelNotEnabled},
		{"enabled L0 is raised to L1", true, entity.LevelNotEnabled, entity.LevelEnabled},
		{"enabled L4 is kept", true, entity.LevelConsistent, entity.LevelConsistent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ReconcileLevel(tt.enabled, tt.level))
		})
	}
}

func TestSummarizeActivity(t *testing.T) {
	today := time.Date(2024, 3, 31, 15, 4, 0, 0, time.UTC)
	day := func(offset int) time.Time { return entity.Day(today).AddDate(0, 0, -offset) }

	t.Run("no rows", func(t *testing.T) {
		s := entity.SummarizeActivity(nil, today, entity.MaturityWindowDays)
		assert.Equal(t, 0, s.ActiveDays)
		assert.Equal(t, 0.0, s.AcceptanceRatePercent)
		assert.False(t, s.WeeklyActive)
		assert.Nil(t, s.LastActivity)
	})

	t.Run("counts distinct days inside the window", func(t *testing.T) {
		rows := []entity.ActivityDay{
			{Date: day(1), SuggestionsShown: 10, SuggestionsAccepted: 4},
			{Date: day(1).Add(3 * time.Hour), SuggestionsShown: 10, SuggestionsAccepted: 4},
			{Date: day(10), SuggestionsShown: 20, SuggestionsAccepted: 2},
			{Date: day(45), SuggestionsShown: 100, SuggestionsAccepted: 100},
		}
		s := entity.SummarizeActivity(rows, today, entity.MaturityWindowDays)
		assert.Equal(t, 2, s.ActiveDays)
		assert.InDelta(t, 25.0, s.AcceptanceRatePercent, 0.001)
		assert.True(t, s.WeeklyActive)
		assert.Equal(t, day(1), *s.LastActivity)
	})

	t.Run("activity older than a week is monthly only", func(t *testing.T) {
		rows := []entity.ActivityDay{{Date: day(12)}}
		s := entity.SummarizeActivity(rows, today, entity.MaturityWindowDays)
		update := entity.RecomputeMaturity(true, s)
		assert.False(t, update.IsWeeklyActive)
		assert.True(t, update.IsMonthlyActive)
		assert.Equal(t, entity.LevelActive, update.Level)
		assert.Equal(t, 0.0, s.AcceptanceRatePercent)
	})
}

func TestLevels(t *testing.T) {
	levels := entity.Levels()
	assert.Len(t, levels, 6)
	assert.Equal(t, "L0", levels[0].Name)
	assert.Equal(t, "#ea4335", levels[0].Color)
	assert.Equal(t, "Value User", levels[5].Description)
	assert.Equal(t, "L3 - Working User", entity.LevelWorking.Label())
	assert.Equal(t, "L9", entity.MaturityLevel(9).Label())
}
