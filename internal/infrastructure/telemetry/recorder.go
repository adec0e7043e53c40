package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pymecredit/creditrisk/internal/domain/port"
)

var _ port.EvaluationRecorder = (*Recorder)(nil)

const meterName = "github.com/pymecredit/creditrisk"

// Recorder implements port.EvaluationRecorder with OpenTelemetry instruments.
type Recorder struct {
	evaluations     metric.Int64Counter
	scores          metric.Int64Histogram
	documents       metric.Int64Counter
	staged          metric.Int64Counter
	stagingFailures metric.Int64Counter
}

// NewRecorder creates the instruments on mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	evaluations, err := meter.Int64Counter("creditrisk_evaluations_total",
		metric.WithDescription("Completed evaluations by credit tier."))
	if err != nil {
		return nil, fmt.Errorf("create evaluations counter: %w", err)
	}
	scores, err := meter.Int64Histogram("creditrisk_score",
		metric.WithDescription("Distribution of committed risk scores."),
		metric.WithExplicitBucketBoundaries(50, 60, 70, 80, 90, 100))
	if err != nil {
		return nil, fmt.Errorf("create score histogram: %w", err)
	}
	documents, err := meter.Int64Counter("creditrisk_intake_documents_total",
		metric.WithDescription("Documents offered for intake by outcome."))
	if err != nil {
		return nil, fmt.Errorf("create intake counter: %w", err)
	}
	staged, err := meter.Int64Counter("creditrisk_staged_documents_total",
		metric.WithDescription("Documents stored in object storage."))
	if err != nil {
		return nil, fmt.Errorf("create staged counter: %w", err)
	}
	failures, err := meter.Int64Counter("creditrisk_staging_failures_total",
		metric.WithDescription("Staging runs that stopped on a storage error."))
	if err != nil {
		return nil, fmt.Errorf("create staging failure counter: %w", err)
	}

	return &Recorder{
		evaluations:     evaluations,
		scores:          scores,
		documents:       documents,
		staged:          staged,
		stagingFailures: failures,
	}, nil
}

func (r *Recorder) RecordEvaluation(ctx context.Context, tier string, score int) {
	attrs := metric.WithAttributes(attribute.String("tier", tier))
	r.evaluations.Add(ctx, 1, attrs)
	r.scores.Record(ctx, int64(score), attrs)
}

func (r *Recorder) RecordIntake(ctx context.Context, accepted, rejected int) {
	if accepted > 0 {
		r.documents.Add(ctx, int64(accepted), metric.WithAttributes(attribute.String("outcome", "accepted")))
	}
	if rejected > 0 {
		r.documents.Add(ctx, int64(rejected), metric.WithAttributes(attribute.String("outcome", "rejected")))
	}
}

func (r *Recorder) RecordStaging(ctx context.Context, staged int, failed bool) {
	if staged > 0 {
		r.staged.Add(ctx, int64(staged))
	}
	if failed {
		r.stagingFailures.Add(ctx, 1)
	}
}
