package port

import (
	"context"
	"io"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Storage ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ObjectStore puts a document under key and returns the stored path.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// DocumentRegistry records which documents a company has staged.
type DocumentRegistry interface {
	RecordStaged(ctx context.Context, companyID string, docs []model.UploadedDocument) error
	ListByCompany(ctx context.Context, companyID string) ([]model.UploadedDocument, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Rendering and telemetry ports
// ---------------------------------------------------------------------------

// ReportRenderer serialises a composed document into a deliverable format.
// Format names the renderer ("pdf", "json", "text").
type ReportRenderer interface {
	Format() string
	Render(ctx context.Context, doc model.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// EvaluationRecorder receives evaluation and intake measurements.
type EvaluationRecorder interface {
	RecordEvaluation(ctx context.Context, tier string, score int)
	RecordIntake(ctx context.Context, accepted, rejected int)
	RecordStaging(ctx context.Context, staged int, failed bool)
}
