package usecase_test

import (
	"context"
	"io"
	"strings"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/model"
)

// --- Mock implementations ---

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockObjectStore struct {
	putObjectFunc func(ctx context.Context, key string) (string, error)
	keys          []string
}

func (m *mockObjectStore) PutObject(ctx context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	_, _ = io.Copy(io.Discard, body)
	m.keys = append(m.keys, key)
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, key)
	}
	return key, nil
}

type mockDocumentRegistry struct {
	recordStagedFunc  func(ctx context.Context, companyID string, docs []model.UploadedDocument) error
	listByCompanyFunc func(ctx context.Context, companyID string) ([]model.UploadedDocument, error)
	recorded          []model.UploadedDocument
	listed            []string
}

func (m *mockDocumentRegistry) RecordStaged(ctx context.Context, companyID string, docs []model.UploadedDocument) error {
	if m.recordStagedFunc != nil {
		return m.recordStagedFunc(ctx, companyID, docs)
	}
	m.recorded = append(m.recorded, docs...)
	return nil
}

func (m *mockDocumentRegistry) ListByCompany(ctx context.Context, companyID string) ([]model.UploadedDocument, error) {
	m.listed = append(m.listed, companyID)
	if m.listByCompanyFunc != nil {
		return m.listByCompanyFunc(ctx, companyID)
	}
	return m.recorded, nil
}

type mockRecorder struct {
	evaluations []string
	scores      []int
	accepted    int
	rejected    int
	staged      int
	failures    int
}

func (m *mockRecorder) RecordEvaluation(_ context.Context, tier string, score int) {
	m.evaluations = append(m.evaluations, tier)
	m.scores = append(m.scores, score)
}

func (m *mockRecorder) RecordIntake(_ context.Context, accepted, rejected int) {
	m.accepted += accepted
	m.rejected += rejected
}

func (m *mockRecorder) RecordStaging(_ context.Context, staged int, failed bool) {
	m.staged += staged
	if failed {
		m.failures++
	}
}

type mockRenderer struct {
	format     string
	renderFunc func(ctx context.Context, doc model.Document) ([]byte, error)
	rendered   []model.Document
}

func (m *mockRenderer) Format() string      { return m.format }
func (m *mockRenderer) ContentType() string { return "application/x-" + m.format }
func (m *mockRenderer) Extension() string   { return "." + m.format }

func (m *mockRenderer) Render(ctx context.Context, doc model.Document) ([]byte, error) {
	m.rendered = append(m.rendered, doc)
	if m.renderFunc != nil {
		return m.renderFunc(ctx, doc)
	}
	return []byte("rendered"), nil
}

func files(names ...string) []model.CandidateFile {
	out := make([]model.CandidateFile, len(names))
	for i, n := range names {
		content := "data:" + n
		out[i] = model.CandidateFile{
			Name:      n,
			SizeBytes: uint64(len(content)),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(content)), nil
			},
		}
	}
	return out
}
