package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("creditrisk.evaluation.completed", "eval-123", "Evaluation")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}
	if event.EventType() != "creditrisk.evaluation.completed" {
		t.Errorf("expected event type %q, got %q", "creditrisk.evaluation.completed", event.EventType())
	}
	if event.AggregateID() != "eval-123" {
		t.Errorf("expected aggregate ID %q, got %q", "eval-123", event.AggregateID())
	}
	if event.AggregateType() != "Evaluation" {
		t.Errorf("expected aggregate type %q, got %q", "Evaluation", event.AggregateType())
	}
	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventMarshalsHeaderFields(t *testing.T) {
	type staged struct {
		BaseEvent
		Company string `json:"company"`
	}
	payload, err := json.Marshal(staged{
		BaseEvent: NewBaseEvent("creditrisk.documents.staged", "Acme", "DocumentIntake"),
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}
	for _, key := range []string{"event_id", "event_type", "aggregate_id", "aggregate_type", "occurred_at", "company"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("expected key %q in payload %s", key, payload)
		}
	}
}

func TestEventCollectorRecord(t *testing.T) {
	collector := &EventCollector{}

	collector.Record(NewBaseEvent("Event1", "agg", "Aggregate"))
	collector.Record(NewBaseEvent("Event2", "agg", "Aggregate"))

	events := collector.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].EventType() != "Event1" {
		t.Errorf("expected first event type %q, got %q", "Event1", events[0].EventType())
	}
	if events[1].EventType() != "Event2" {
		t.Errorf("expected second event type %q, got %q", "Event2", events[1].EventType())
	}
}

func TestEventCollectorClearEvents(t *testing.T) {
	collector := &EventCollector{}
	collector.Record(NewBaseEvent("Event1", "agg", "Aggregate"))
	collector.Record(NewBaseEvent("Event2", "agg", "Aggregate"))

	cleared := collector.ClearEvents()
	if len(cleared) != 2 {
		t.Fatalf("expected ClearEvents to return 2 events, got %d", len(cleared))
	}
	if len(collector.Events()) != 0 {
		t.Errorf("expected internal slice to be empty after ClearEvents, got %d events", len(collector.Events()))
	}
	if again := collector.ClearEvents(); again != nil {
		t.Errorf("expected nil from ClearEvents on empty collector, got %v", again)
	}
}

func TestEventCollectorSkipsNilAndCopies(t *testing.T) {
	collector := &EventCollector{}
	collector.Record(nil, NewBaseEvent("Event1", "agg", "Aggregate"), nil)

	events := collector.Events()
	if len(events) != 1 {
		t.Fatalf("expected nil events to be dropped, got %d events", len(events))
	}

	events[0] = NewBaseEvent("Replaced", "agg", "Aggregate")
	if got := collector.Events()[0].EventType(); got != "Event1" {
		t.Errorf("expected queued event to be unaffected by caller edits, got %q", got)
	}
}
