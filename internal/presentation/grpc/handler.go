package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
)

// DefaultExportFormat is used when ExportReport names no format.
const DefaultExportFormat = "pdf"

// EvaluationHandler exposes evaluation and report export over gRPC.
type EvaluationHandler struct {
	UnimplementedEvaluationServiceServer

	evaluate *usecase.EvaluateCompanyUseCase
	export   *usecase.ExportReportUseCase
	composer *service.ReportComposer
	logger   *slog.Logger
}

var _ EvaluationServiceServer = (*EvaluationHandler)(nil)

// NewEvaluationHandler creates a handler with all use-case dependencies.
func NewEvaluationHandler(
	evaluate *usecase.EvaluateCompanyUseCase,
	export *usecase.ExportReportUseCase,
	composer *service.ReportComposer,
	logger *slog.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		evaluate: evaluate,
		export:   export,
		composer: composer,
		logger:   logger,
	}
}

// Evaluate scores a company and returns the dashboard view.
func (h *EvaluationHandler) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	resp, err := h.evaluate.Execute(ctx, req.toDTO())
	if err != nil {
		h.logger.WarnContext(ctx, "evaluation failed", "company", req.CompanyName, "error", err)
		return nil, toStatus(err)
	}

	doc, err := h.composer.Compose(resp.Report)
	if err != nil {
		return nil, toStatus(fmt.Errorf("compose report: %w", err))
	}

	report := resp.Report
	rec := report.Recommendation()
	h.logger.InfoContext(ctx, "evaluation completed",
		"evaluation_id", report.ID(),
		"company", report.Profile().DisplayName(),
		"score", report.Score().Int(),
		"tier", rec.Tier.String(),
	)

	return &EvaluateResponse{
		EvaluationID: report.ID(),
		Score:        report.Score().Int(),
		RiskLevel:    report.Score().Level().String(),
		Tier:         rec.Tier.String(),
		MaxAmount:    rec.MaxAmount.Format(),
		Dashboard:    render.BuildView(doc),
		Rejected:     resp.Rejected,
		Staged:       resp.Staged,
		Notices:      resp.Notices,
	}, nil
}

// ExportReport evaluates the embedded request and renders the report.
func (h *EvaluationHandler) ExportReport(ctx context.Context, req *ExportReportRequest) (*ExportReportResponse, error) {
	format := req.Format
	if format == "" {
		format = DefaultExportFormat
	}
	if !slices.Contains(h.export.Formats(), format) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown report format %q, expected one of %v", format, h.export.Formats())
	}

	resp, err := h.evaluate.Execute(ctx, req.Evaluation.toDTO())
	if err != nil {
		h.logger.WarnContext(ctx, "evaluation failed", "company", req.Evaluation.CompanyName, "error", err)
		return nil, toStatus(err)
	}

	out, err := h.export.Execute(ctx, dto.ExportReportRequest{Report: resp.Report, Format: format})
	if err != nil {
		h.logger.ErrorContext(ctx, "export failed", "format", format, "error", err)
		return nil, toStatus(err)
	}

	return &ExportReportResponse{
		FileName:    out.FileName,
		ContentType: out.ContentType,
		Content:     out.Content,
	}, nil
}
