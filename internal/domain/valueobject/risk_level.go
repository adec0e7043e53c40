package valueobject

// RGB is a display colour.
type RGB struct {
	R, G, B uint8
}

// RiskLevel is the three-way risk label shown with every score.
type RiskLevel struct {
	value string
	label string
	color RGB
}

var (
	RiskLevelLow    = RiskLevel{value: "LOW", label: "Low risk", color: RGB{R: 34, G: 197, B: 94}}
	RiskLevelMedium = RiskLevel{value: "MEDIUM", label: "Medium risk", color: RGB{R: 234, G: 179, B: 8}}
	RiskLevelHigh   = RiskLevel{value: "HIGH", label: "High risk", color: RGB{R: 239, G: 68, B: 68}}
)

// String returns the machine value (LOW, MEDIUM, HIGH).
func (l RiskLevel) String() string { return l.value }

// Label returns the human-readable label.
func (l RiskLevel) Label() string { return l.label }

// Color returns the colour bound to the level.
func (l RiskLevel) Color() RGB { return l.color }
