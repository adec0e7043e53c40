package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// EvaluateCompanyUseCase runs intake, the analysis wait, scoring,
// recommendation and what-if simulation for one company.
type EvaluateCompanyUseCase struct {
	scorer    *service.ScoreEngine
	policy    *service.RecommendationPolicy
	simulator *service.WhatIfSimulator
	stager    *StageDocumentsUseCase
	publisher port.EventPublisher
	recorder  port.EvaluationRecorder
	maxFiles  int
	delay     time.Duration
	now       func() time.Time
}

// EvaluateOption customises an EvaluateCompanyUseCase.
type EvaluateOption func(*EvaluateCompanyUseCase)

// WithAnalysisDelay sets the wait before a score is committed.
func WithAnalysisDelay(d time.Duration) EvaluateOption {
	return func(uc *EvaluateCompanyUseCase) { uc.delay = d }
}

// WithMaxFiles sets the document cap used by the evaluation intake.
func WithMaxFiles(n int) EvaluateOption {
	return func(uc *EvaluateCompanyUseCase) { uc.maxFiles = n }
}

// WithStager enables staging of accepted documents on request.
func WithStager(s *StageDocumentsUseCase) EvaluateOption {
	return func(uc *EvaluateCompanyUseCase) { uc.stager = s }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r port.EvaluationRecorder) EvaluateOption {
	return func(uc *EvaluateCompanyUseCase) { uc.recorder = r }
}

// WithClock overrides the evaluation timestamp source.
func WithClock(now func() time.Time) EvaluateOption {
	return func(uc *EvaluateCompanyUseCase) { uc.now = now }
}

// NewEvaluateCompanyUseCase wires dependencies.
func NewEvaluateCompanyUseCase(
	scorer *service.ScoreEngine,
	policy *service.RecommendationPolicy,
	simulator *service.WhatIfSimulator,
	publisher port.EventPublisher,
	opts ...EvaluateOption,
) *EvaluateCompanyUseCase {
	uc := &EvaluateCompanyUseCase{
		scorer:    scorer,
		policy:    policy,
		simulator: simulator,
		publisher: publisher,
		maxFiles:  10,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.recorder = orNoopRecorder(uc.recorder)
	return uc
}

// Execute evaluates the company described by req. Nothing is committed when
// ctx is cancelled during the analysis wait.
func (uc *EvaluateCompanyUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateCompanyRequest,
) (resp dto.EvaluationResponse, err error) {
	ctx, span := tracer.Start(ctx, "EvaluateCompany")
	defer endSpan(span, &err)

	// 1. Freeze the profile and validate the declared indicators.
	profile := req.Profile().Freeze()
	indicators, err := model.NewFinancialIndicators(req.Sales, req.Liquidity, req.Profitability, req.Reputation)
	if err != nil {
		return resp, fmt.Errorf("validate indicators: %w", err)
	}

	// 2. Admit documents.
	intake := service.NewDocumentIntake(uc.maxFiles)
	accepted, err := intake.Accept(req.Files)
	resp.Rejected = accepted.RejectedNames()
	resp.Notices = append(resp.Notices, accepted.Notices...)
	uc.recorder.RecordIntake(ctx, len(accepted.Accepted), len(accepted.Rejected))
	if err != nil {
		return resp, fmt.Errorf("accept documents: %w", err)
	}

	// 3. Optionally stage them.
	if req.StageDocuments && uc.stager != nil && intake.Count() > 0 {
		staged, err := uc.stager.Execute(ctx, intake, profile.Identifier())
		resp.Staged = staged.Staged
		resp.Notices = append(resp.Notices, staged.Notice)
		if err != nil {
			return resp, err
		}
	}

	// 4. Simulated analysis.
	if err := waitAnalysis(ctx, uc.delay); err != nil {
		return resp, fmt.Errorf("analysis: %w", err)
	}

	// 5. Score, recommend and simulate.
	docs := intake.Documents()
	score := uc.scorer.Compute(profile, len(docs) > 0, profile.HasSocialLink())
	rec := uc.policy.Recommend(score)
	whatIf := uc.simulator.Simulate(score)
	report := model.NewReportModel(profile, indicators, score, rec, whatIf, docs, uc.now())

	span.SetAttributes(
		attribute.Int("creditrisk.score", score.Int()),
		attribute.String("creditrisk.tier", rec.Tier.String()),
	)
	uc.recorder.RecordEvaluation(ctx, rec.Tier.String(), score.Int())

	// 6. Publish domain events.
	if err := uc.publisher.Publish(ctx, report.DomainEvents()...); err != nil {
		return resp, fmt.Errorf("publish events: %w", err)
	}

	resp.Report = report
	resp.Notices = append(resp.Notices, valueobject.Success(
		"Evaluation completed",
		fmt.Sprintf("Score generated: %s", score),
	))
	return resp, nil
}

func waitAnalysis(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
