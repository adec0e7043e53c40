package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvaluationCompleted(t *testing.T) {
	evt := NewEvaluationCompleted("eval-1", "Acme", 100, "LOW", "APPROVED", "50000", "USD", 1)

	assert.Equal(t, TypeEvaluationCompleted, evt.EventType())
	assert.Equal(t, "eval-1", evt.AggregateID())
	assert.Equal(t, "Evaluation", evt.AggregateType())
	assert.NotEmpty(t, evt.EventID())
	assert.False(t, evt.OccurredAt().IsZero())
	assert.Equal(t, 100, evt.Score)
}

func TestNewDocumentsStaged(t *testing.T) {
	evt := NewDocumentsStaged("Acme", []string{"Acme/a.pdf", "Acme/b.csv"})

	assert.Equal(t, TypeDocumentsStaged, evt.EventType())
	assert.Equal(t, "Acme", evt.AggregateID())
	assert.Equal(t, "Company", evt.AggregateType())
	assert.Len(t, evt.StorageKeys, 2)
}
