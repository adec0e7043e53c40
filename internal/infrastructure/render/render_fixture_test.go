package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/pkg/money"
)

func composedReport(t *testing.T, profile model.CompanyProfile, docs []model.UploadedDocument) model.Document {
	t.Helper()
	score := service.NewScoreEngine(service.FixedPerturbation(5)).
		Compute(profile, len(docs) > 0, profile.HasSocialLink())
	m := model.NewReportModel(
		profile,
		model.FinancialIndicators{Sales: 85, Liquidity: 68, Profitability: 71, Reputation: 79},
		score,
		service.NewRecommendationPolicy(money.USD).Recommend(score),
		service.NewWhatIfSimulator().Simulate(score),
		docs,
		time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC),
	)
	doc, err := service.NewReportComposer().Compose(m)
	require.NoError(t, err)
	return doc
}

func acmeReport(t *testing.T) model.Document {
	return composedReport(t,
		model.CompanyProfile{Name: "Acme", TaxID: "123", SocialMediaURL: "http://x"},
		[]model.UploadedDocument{{FileName: "a.pdf", SizeBytes: 1536}},
	)
}

type bogusBlock struct{}

func (bogusBlock) Kind() model.BlockKind { return "bogus" }
