package model

import (
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/pkg/money"
)

// CreditRecommendation is the credit decision for a score together with the
// fixed wording shown for its tier.
type CreditRecommendation struct {
	Tier      valueobject.CreditTier
	MaxAmount money.Money
	Icon      string
	Headline  string
	Rationale string
}

// ---------------------------------------------------------------------------
// What-if
// ---------------------------------------------------------------------------

// WhatIfScenario is one counterfactual projection. ProjectedScore is not
// clamped and may exceed 100.
type WhatIfScenario struct {
	Label          string
	Delta          int
	ProjectedScore int
}

// WhatIfResult holds the scenarios in their fixed order.
type WhatIfResult struct {
	Scenarios []WhatIfScenario
}
