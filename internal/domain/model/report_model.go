package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ReportModel aggregate root
// ---------------------------------------------------------------------------

// ReportModel is the read-only outcome of one evaluation. Both the exported
// report and the dashboard are rendered from it.
type ReportModel struct {
	id             string
	profile        CompanyProfile
	indicators     FinancialIndicators
	score          valueobject.RiskScore
	recommendation CreditRecommendation
	whatIf         WhatIfResult
	documents      []UploadedDocument
	evaluatedAt    time.Time
	domainEvents   []event.DomainEvent
}

// NewReportModel assembles a completed evaluation and raises
// EvaluationCompleted.
func NewReportModel(
	profile CompanyProfile,
	indicators FinancialIndicators,
	score valueobject.RiskScore,
	recommendation CreditRecommendation,
	whatIf WhatIfResult,
	documents []UploadedDocument,
	now time.Time,
) *ReportModel {
	docs := make([]UploadedDocument, len(documents))
	copy(docs, documents)
	scenarios := make([]WhatIfScenario, len(whatIf.Scenarios))
	copy(scenarios, whatIf.Scenarios)

	m := &ReportModel{
		id:             uuid.New().String(),
		profile:        profile.Freeze(),
		indicators:     indicators,
		score:          score,
		recommendation: recommendation,
		whatIf:         WhatIfResult{Scenarios: scenarios},
		documents:      docs,
		evaluatedAt:    now,
	}
	m.domainEvents = append(m.domainEvents, event.NewEvaluationCompleted(
		m.id,
		m.profile.DisplayName(),
		score.Int(),
		score.Level().String(),
		recommendation.Tier.String(),
		recommendation.MaxAmount.Amount().String(),
		recommendation.MaxAmount.Currency().Code(),
		len(docs),
	))
	return m
}

func (m *ReportModel) ID() string                           { return m.id }
func (m *ReportModel) Profile() CompanyProfile              { return m.profile }
func (m *ReportModel) Indicators() FinancialIndicators      { return m.indicators }
func (m *ReportModel) Score() valueobject.RiskScore         { return m.score }
func (m *ReportModel) Recommendation() CreditRecommendation { return m.recommendation }
func (m *ReportModel) EvaluatedAt() time.Time               { return m.evaluatedAt }

// WhatIf returns a copy of the scenarios.
func (m *ReportModel) WhatIf() WhatIfResult {
	scenarios := make([]WhatIfScenario, len(m.whatIf.Scenarios))
	copy(scenarios, m.whatIf.Scenarios)
	return WhatIfResult{Scenarios: scenarios}
}

// Documents returns a copy of the documents considered by the evaluation.
func (m *ReportModel) Documents() []UploadedDocument {
	docs := make([]UploadedDocument, len(m.documents))
	copy(docs, m.documents)
	return docs
}

// DocumentNames returns the file names in intake order.
func (m *ReportModel) DocumentNames() []string {
	names := make([]string, len(m.documents))
	for i, d := range m.documents {
		names[i] = d.FileName
	}
	return names
}

// DomainEvents returns events raised while building the model.
func (m *ReportModel) DomainEvents() []event.DomainEvent {
	return m.domainEvents
}
