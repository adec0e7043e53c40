package service

import (
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

type scenario struct {
	label string
	delta int
}

var whatIfScenarios = []scenario{
	{label: "sales +20%", delta: 6},
	{label: "improved digital reputation", delta: 3},
	{label: "debt reduced 30%", delta: 8},
}

// WhatIfSimulator projects the score under fixed counterfactuals.
type WhatIfSimulator struct{}

func NewWhatIfSimulator() *WhatIfSimulator {
	return &WhatIfSimulator{}
}

// Simulate applies each scenario to score on its own. Projections are left
// unclamped, so they can exceed 100.
func (s *WhatIfSimulator) Simulate(score valueobject.RiskScore) model.WhatIfResult {
	out := make([]model.WhatIfScenario, len(whatIfScenarios))
	for i, sc := range whatIfScenarios {
		out[i] = model.WhatIfScenario{
			Label:          sc.label,
			Delta:          sc.delta,
			ProjectedScore: score.Int() + sc.delta,
		}
	}
	return model.WhatIfResult{Scenarios: out}
}
