package valueobject

import "fmt"

const (
	MinRiskScore = 0
	MaxRiskScore = 100

	// LowRiskThreshold and MediumRiskThreshold are shared by the credit tier
	// policy and the risk label shown next to every score.
	LowRiskThreshold    = 80
	MediumRiskThreshold = 50
)

// RiskScore is a creditworthiness score in [0,100]; higher is better.
type RiskScore struct {
	value int
}

// NewRiskScore clamps v into [MinRiskScore, MaxRiskScore].
func NewRiskScore(v int) RiskScore {
	switch {
	case v > MaxRiskScore:
		v = MaxRiskScore
	case v < MinRiskScore:
		v = MinRiskScore
	}
	return RiskScore{value: v}
}

// Int returns the numeric score.
func (s RiskScore) Int() int { return s.value }

// Level returns the display risk level for the score.
func (s RiskScore) Level() RiskLevel {
	switch {
	case s.value >= LowRiskThreshold:
		return RiskLevelLow
	case s.value >= MediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// String renders the score as "N/100".
func (s RiskScore) String() string {
	return fmt.Sprintf("%d/%d", s.value, MaxRiskScore)
}
