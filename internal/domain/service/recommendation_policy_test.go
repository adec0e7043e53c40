package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/pkg/money"
)

func TestRecommendationPolicy_Boundaries(t *testing.T) {
	policy := service.NewRecommendationPolicy(money.USD)

	tests := []struct {
		score  int
		tier   valueobject.CreditTier
		amount string
	}{
		{0, valueobject.CreditTierDenied, "$0"},
		{49, valueobject.CreditTierDenied, "$0"},
		{50, valueobject.CreditTierReview, "$25,000"},
		{79, valueobject.CreditTierReview, "$25,000"},
		{80, valueobject.CreditTierApproved, "$50,000"},
		{100, valueobject.CreditTierApproved, "$50,000"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%d", tt.score), func(t *testing.T) {
			rec := policy.Recommend(valueobject.NewRiskScore(tt.score))
			assert.Equal(t, tt.tier, rec.Tier)
			assert.Equal(t, tt.amount, rec.MaxAmount.Format())
			assert.Equal(t, money.USD, rec.MaxAmount.Currency())
		})
	}
}

func TestRecommendationPolicy_TierForEveryScore(t *testing.T) {
	policy := service.NewRecommendationPolicy(money.USD)
	for s := 0; s <= 100; s++ {
		tier := policy.Recommend(valueobject.NewRiskScore(s)).Tier
		switch {
		case s >= 80:
			assert.Equal(t, valueobject.CreditTierApproved, tier, "score %d", s)
		case s < 50:
			assert.Equal(t, valueobject.CreditTierDenied, tier, "score %d", s)
		default:
			assert.Equal(t, valueobject.CreditTierReview, tier, "score %d", s)
		}
	}
}

func TestRecommendationPolicy_Wording(t *testing.T) {
	policy := service.NewRecommendationPolicy(money.USD)

	approved := policy.Recommend(valueobject.NewRiskScore(90))
	assert.Equal(t, "Credit Approved", approved.Headline)
	assert.Equal(t, "Your company meets the requirements to obtain financing.", approved.Rationale)

	review := policy.Recommend(valueobject.NewRiskScore(60))
	assert.Equal(t, "Review Required", review.Headline)

	denied := policy.Recommend(valueobject.NewRiskScore(10))
	assert.Equal(t, "Credit Not Recommended", denied.Headline)
	assert.True(t, denied.MaxAmount.IsZero())
}
