package entity

// Canonical KPI names of the phase progression model.
const (
	KPIActivationRate   = "Activation Rate"
	KPIWorkLinkage      = "Work Linkage"
	KPIConsistencyScore = "Consistency Score"
	KPIKOIsAchieved     = "KOIs Achieved"
)

// KPIDefinition is a canonical KPI with its fixed target.
type KPIDefinition struct {
	Phase    int
	Name     string
	Category string
	Target   float64
}

// CanonicalKPIs returns the four phase KPIs in phase order.
func CanonicalKPIs() []KPIDefinition {
	return []KPIDefinition{
		{Phase: 1, Name: KPIActivationRate, Category: "adoption", Target: 60},
		{Phase: 2, Name: KPIWorkLinkage, Category: "productivity", Target: 50},
		{Phase: 3, Name: KPIConsistencyScore, Category: "productivity", Target: 40},
		{Phase: 4, Name: KPIKOIsAchieved, Category: "quality", Target: 8},
	}
}

// KPIEvaluation is the {target, current, achieved} triple.
type KPIEvaluation struct {
	Target   float64
	Current  float64
	Achieved bool
}

// EvaluateKPI compares current against target. Phases are independent:
// a later phase is achieved on its own value even if an earlier one is not.
func EvaluateKPI(target, current float64) KPIEvaluation {
	return KPIEvaluation{
		Target:   target,
		Current:  current,
		Achieved: current >= target,
	}
}
