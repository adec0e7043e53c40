package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pymecredit/creditrisk/internal/domain/port"
)

var tracer trace.Tracer = otel.Tracer("github.com/pymecredit/creditrisk/internal/application/usecase")

// endSpan marks span failed when *errp is set, then ends it.
func endSpan(span trace.Span, errp *error) {
	if err := *errp; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

type noopRecorder struct{}

func (noopRecorder) RecordEvaluation(context.Context, string, int) {}
func (noopRecorder) RecordIntake(context.Context, int, int)        {}
func (noopRecorder) RecordStaging(context.Context, int, bool)      {}

func orNoopRecorder(r port.EvaluationRecorder) port.EvaluationRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
