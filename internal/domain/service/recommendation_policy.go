package service

import (
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/pkg/money"
)

const (
	approvedLimit = 50_000
	reviewLimit   = 25_000
)

// RecommendationPolicy maps a risk score to a credit tier.
type RecommendationPolicy struct {
	currency money.Currency
}

// NewRecommendationPolicy returns a policy quoting limits in currency.
func NewRecommendationPolicy(currency money.Currency) *RecommendationPolicy {
	return &RecommendationPolicy{currency: currency}
}

// Recommend applies the tiers:
//
//	score >= 80 -> approved, max 50,000
//	score >= 50 -> review,   max 25,000
//	score <  50 -> denied
func (p *RecommendationPolicy) Recommend(score valueobject.RiskScore) model.CreditRecommendation {
	switch s := score.Int(); {
	case s >= valueobject.LowRiskThreshold:
		return model.CreditRecommendation{
			Tier:      valueobject.CreditTierApproved,
			MaxAmount: money.NewFromInt(approvedLimit, p.currency),
			Icon:      "[OK]",
			Headline:  "Credit Approved",
			Rationale: "Your company meets the requirements to obtain financing.",
		}
	case s >= valueobject.MediumRiskThreshold:
		return model.CreditRecommendation{
			Tier:      valueobject.CreditTierReview,
			MaxAmount: money.NewFromInt(reviewLimit, p.currency),
			Icon:      "[!]",
			Headline:  "Review Required",
			Rationale: "Additional analysis is required to determine eligibility.",
		}
	default:
		return model.CreditRecommendation{
			Tier:      valueobject.CreditTierDenied,
			MaxAmount: money.Zero(p.currency),
			Icon:      "[X]",
			Headline:  "Credit Not Recommended",
			Rationale: "Improve your financial indicators before applying for credit.",
		}
	}
}
