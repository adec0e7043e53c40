package event

import (
	"github.com/pymecredit/creditrisk/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	TypeEvaluationCompleted = "creditrisk.evaluation.completed"
	TypeDocumentsStaged     = "creditrisk.documents.staged"

	aggregateEvaluation = "Evaluation"
	aggregateCompany    = "Company"
)

// EvaluationCompleted is raised once a score has been committed for a company.
type EvaluationCompleted struct {
	events.BaseEvent
	Company   string `json:"company"`
	Score     int    `json:"score"`
	RiskLevel string `json:"risk_level"`
	Tier      string `json:"tier"`
	MaxAmount string `json:"max_amount"`
	Currency  string `json:"currency"`
	Documents int    `json:"documents"`
}

func NewEvaluationCompleted(
	evaluationID, company string,
	score int, riskLevel, tier, maxAmount, currency string,
	documents int,
) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent: events.NewBaseEvent(TypeEvaluationCompleted, evaluationID, aggregateEvaluation),
		Company:   company,
		Score:     score,
		RiskLevel: riskLevel,
		Tier:      tier,
		MaxAmount: maxAmount,
		Currency:  currency,
		Documents: documents,
	}
}

// DocumentsStaged is raised after a batch of documents reached object storage.
type DocumentsStaged struct {
	events.BaseEvent
	StorageKeys []string `json:"storage_keys"`
}

func NewDocumentsStaged(companyID string, storageKeys []string) DocumentsStaged {
	return DocumentsStaged{
		BaseEvent:   events.NewBaseEvent(TypeDocumentsStaged, companyID, aggregateCompany),
		StorageKeys: storageKeys,
	}
}
