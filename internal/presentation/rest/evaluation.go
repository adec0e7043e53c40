package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
)

const (
	maxFormMemory  = 32 << 20
	documentsField = "documents"
)

// EvaluationHandler serves POST /v1/evaluations.
type EvaluationHandler struct {
	evaluate *usecase.EvaluateCompanyUseCase
	export   *usecase.ExportReportUseCase
	composer *service.ReportComposer
	logger   *slog.Logger
}

func NewEvaluationHandler(
	evaluate *usecase.EvaluateCompanyUseCase,
	export *usecase.ExportReportUseCase,
	composer *service.ReportComposer,
	logger *slog.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{evaluate: evaluate, export: export, composer: composer, logger: logger}
}

func (h *EvaluationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/evaluations", h.create)
	r.Get("/formats", h.formats)
}

type evaluationBody struct {
	EvaluationID string               `json:"evaluation_id"`
	Score        int                  `json:"score"`
	RiskLevel    string               `json:"risk_level"`
	Tier         string               `json:"tier"`
	MaxAmount    string               `json:"max_amount"`
	Dashboard    render.DashboardView `json:"dashboard"`
	Rejected     []string             `json:"rejected,omitempty"`
	Staged       []dto.StagedDocument `json:"staged,omitempty"`
	Notices      []valueobject.Notice `json:"notices"`
}

// formats lists the dashboard view plus every export format, once each.
func (h *EvaluationHandler) formats(w http.ResponseWriter, _ *http.Request) {
	formats := append([]string{"json"}, h.export.Formats()...)
	slices.Sort(formats)
	writeJSON(w, http.StatusOK, map[string][]string{"formats": slices.Compact(formats)})
}

// create evaluates a multipart form. With ?format=pdf or ?format=text the
// rendered report is returned as an attachment; otherwise the JSON view.
func (h *EvaluationHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = r.FormValue("format")
	}
	format = strings.ToLower(format)
	if format == "" {
		format = "json"
	}
	if format != "json" && !slices.Contains(h.export.Formats(), format) {
		writeError(w, fmt.Errorf("%w: %q", usecase.ErrUnknownFormat, format), nil)
		return
	}

	req, err := parseEvaluationForm(r)
	if err != nil {
		writeError(w, err, nil)
		return
	}

	resp, err := h.evaluate.Execute(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "evaluation failed", "company", req.CompanyName, "error", err)
		writeError(w, err, resp.Notices)
		return
	}

	if format != "json" {
		out, err := h.export.Execute(ctx, dto.ExportReportRequest{Report: resp.Report, Format: format})
		if err != nil {
			h.logger.ErrorContext(ctx, "export failed", "format", format, "error", err)
			writeError(w, err, resp.Notices)
			return
		}
		w.Header().Set("Content-Type", out.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out.Content) //nolint:errcheck
		return
	}

	doc, err := h.composer.Compose(resp.Report)
	if err != nil {
		writeError(w, fmt.Errorf("compose report: %w", err), resp.Notices)
		return
	}
	report := resp.Report
	rec := report.Recommendation()
	writeJSON(w, http.StatusOK, evaluationBody{
		EvaluationID: report.ID(),
		Score:        report.Score().Int(),
		RiskLevel:    report.Score().Level().String(),
		Tier:         rec.Tier.String(),
		MaxAmount:    rec.MaxAmount.Format(),
		Dashboard:    render.BuildView(doc),
		Rejected:     resp.Rejected,
		Staged:       resp.Staged,
		Notices:      resp.Notices,
	})
}

func parseEvaluationForm(r *http.Request) (dto.EvaluateCompanyRequest, error) {
	var req dto.EvaluateCompanyRequest
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return req, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	req.CompanyName = r.FormValue("company_name")
	req.TaxID = r.FormValue("tax_id")
	req.Industry = r.FormValue("industry")
	req.SocialMediaURL = r.FormValue("social_media_url")
	req.StageDocuments, _ = strconv.ParseBool(r.FormValue("stage_documents"))

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"sales", &req.Sales},
		{"liquidity", &req.Liquidity},
		{"profitability", &req.Profitability},
		{"reputation", &req.Reputation},
	} {
		raw := r.FormValue(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: %s must be an integer", errBadRequest, f.name)
		}
		*f.dst = v
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File[documentsField] {
			req.Files = append(req.Files, candidateFrom(fh))
		}
	}
	return req, nil
}

func candidateFrom(fh *multipart.FileHeader) model.CandidateFile {
	return model.CandidateFile{
		Name:      fh.Filename,
		SizeBytes: uint64(fh.Size),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
