package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/service"
)

// ErrUnknownFormat is returned when no renderer is registered for a format.
var ErrUnknownFormat = errors.New("unknown report format")

// ExportReportUseCase composes a ReportModel once and hands the document to
// the renderer for the requested format.
type ExportReportUseCase struct {
	composer  *service.ReportComposer
	renderers map[string]port.ReportRenderer
}

// NewExportReportUseCase registers renderers by their Format.
func NewExportReportUseCase(composer *service.ReportComposer, renderers ...port.ReportRenderer) *ExportReportUseCase {
	byFormat := make(map[string]port.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ExportReportUseCase{composer: composer, renderers: byFormat}
}

// Formats lists the registered format names in sorted order.
func (uc *ExportReportUseCase) Formats() []string {
	return slices.Sorted(maps.Keys(uc.renderers))
}

// Execute renders req.Report in req.Format.
func (uc *ExportReportUseCase) Execute(ctx context.Context, req dto.ExportReportRequest) (_ dto.ExportedReport, err error) {
	ctx, span := tracer.Start(ctx, "ExportReport")
	defer endSpan(span, &err)

	renderer, ok := uc.renderers[req.Format]
	if !ok {
		return dto.ExportedReport{}, fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
	}

	doc, err := uc.composer.Compose(req.Report)
	if err != nil {
		return dto.ExportedReport{}, fmt.Errorf("compose report: %w", err)
	}

	content, err := renderer.Render(ctx, doc)
	if err != nil {
		return dto.ExportedReport{}, fmt.Errorf("render %s: %w", req.Format, err)
	}

	return dto.ExportedReport{
		FileName:    service.ReportFileName(req.Report.Profile().Name, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
