package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

var _ port.ReportRenderer = (*PDFRenderer)(nil)

// Page geometry in points on A4 (595 x 842).
const (
	pageMargin   = 40.0
	headerHeight = 72.0
	labelWidth   = 120.0
	lineHeight   = 16.0
	gaugePixels  = 240
	gaugePoints  = 96.0
	footerHeight = 12.0
	gaugeImage   = "risk-gauge"
)

var (
	brandColor = valueobject.RGB{R: 37, G: 99, B: 235}
	mutedColor = valueobject.RGB{R: 107, G: 114, B: 128}
	textColor  = valueobject.RGB{R: 17, G: 24, B: 39}
)

// PDFRenderer renders a composed report as a single A4 page.
type PDFRenderer struct {
	compress     bool
	creationDate time.Time
}

// PDFOption customises a PDFRenderer.
type PDFOption func(*PDFRenderer)

// WithCompression toggles stream compression. It is on by default.
func WithCompression(on bool) PDFOption {
	return func(r *PDFRenderer) { r.compress = on }
}

// WithCreationDate pins the document creation date.
func WithCreationDate(t time.Time) PDFOption {
	return func(r *PDFRenderer) { r.creationDate = t }
}

func NewPDFRenderer(opts ...PDFOption) *PDFRenderer {
	r := &PDFRenderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PDFRenderer) Format() string      { return "pdf" }
func (r *PDFRenderer) ContentType() string { return "application/pdf" }
func (r *PDFRenderer) Extension() string   { return ".pdf" }

// Render lays out every block of doc in order.
func (r *PDFRenderer) Render(ctx context.Context, doc model.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(r.compress)
	if !r.creationDate.IsZero() {
		pdf.SetCreationDate(r.creationDate)
	}
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreator("creditrisk", false)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for _, block := range doc.Blocks {
		if err := w.block(block); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) block(b model.Block) error {
	switch b := b.(type) {
	case model.HeaderBlock:
		w.header(b)
	case model.IdentityBlock:
		w.identity(b)
	case model.ScoreBadgeBlock:
		return w.scoreBadge(b)
	case model.IndicatorsBlock:
		w.indicators(b)
	case model.RecommendationBlock:
		w.recommendation(b)
	case model.WhatIfBlock:
		w.lines(b.Title, b.Lines, "")
	case model.DocumentsBlock:
		w.documents(b)
	case model.FooterBlock:
		w.footer(b)
	default:
		return fmt.Errorf("unsupported block %q", b.Kind())
	}
	return nil
}

func (w *pdfWriter) width() float64 {
	pw, _ := w.pdf.GetPageSize()
	return pw - 2*pageMargin
}

func (w *pdfWriter) color(c valueobject.RGB) {
	w.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (w *pdfWriter) fill(c valueobject.RGB) {
	w.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (w *pdfWriter) heading(title string) {
	w.pdf.Ln(10)
	w.pdf.SetFont("Helvetica", "B", 13)
	w.color(textColor)
	w.pdf.CellFormat(0, 20, w.tr(title), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) header(b model.HeaderBlock) {
	pw, _ := w.pdf.GetPageSize()
	w.fill(brandColor)
	w.pdf.Rect(0, 0, pw, headerHeight+pageMargin/2, "F")

	w.pdf.SetXY(pageMargin, pageMargin/2)
	w.pdf.SetFont("Helvetica", "B", 20)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.CellFormat(0, 28, w.tr(b.CompanyName), "", 1, "L", false, 0, "")
	w.pdf.SetFont("Helvetica", "", 11)
	w.pdf.CellFormat(w.width()/2, 16, w.tr(b.Title), "", 0, "L", false, 0, "")
	w.pdf.CellFormat(w.width()/2, 16, w.tr(b.Date), "", 1, "R", false, 0, "")
	w.pdf.SetY(headerHeight + pageMargin/2 + 12)
}

func (w *pdfWriter) identity(b model.IdentityBlock) {
	for _, f := range b.Fields {
		w.pdf.SetFont("Helvetica", "B", 10)
		w.color(mutedColor)
		w.pdf.CellFormat(labelWidth, lineHeight, w.tr(f.Label+":"), "", 0, "L", false, 0, "")
		w.pdf.SetFont("Helvetica", "", 10)
		w.color(textColor)
		w.pdf.CellFormat(0, lineHeight, w.tr(f.Value), "", 1, "L", false, 0, "")
	}
}

func (w *pdfWriter) scoreBadge(b model.ScoreBadgeBlock) error {
	img, err := DrawGauge(gaugePixels, b.SweepRatio, b.Color)
	if err != nil {
		return err
	}
	w.pdf.Ln(8)
	top := w.pdf.GetY()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(gaugeImage, opts, bytes.NewReader(img))
	w.pdf.ImageOptions(gaugeImage, pageMargin, top, gaugePoints, gaugePoints, false, opts, 0, "")

	// Score in the middle of the gauge.
	w.pdf.SetXY(pageMargin, top+gaugePoints/2-12)
	w.pdf.SetFont("Helvetica", "B", 22)
	w.color(b.Color)
	w.pdf.CellFormat(gaugePoints, 24, fmt.Sprintf("%d", b.Score), "", 0, "C", false, 0, "")

	left := pageMargin + gaugePoints + 20
	w.pdf.SetXY(left, top+gaugePoints/2-22)
	w.pdf.SetFont("Helvetica", "B", 16)
	w.pdf.CellFormat(0, 22, w.tr(fmt.Sprintf("Risk score: %d/%d", b.Score, b.OutOf)), "", 1, "L", false, 0, "")
	w.pdf.SetX(left)
	w.pdf.SetFont("Helvetica", "", 12)
	w.pdf.CellFormat(0, 18, w.tr(fmt.Sprintf("%s (%s)", b.RiskLabel, b.RiskLevel)), "", 1, "L", false, 0, "")
	w.pdf.SetY(top + gaugePoints + 4)
	return nil
}

func (w *pdfWriter) indicators(b model.IndicatorsBlock) {
	w.heading("Financial indicators")
	for _, bar := range b.Bars {
		y := w.pdf.GetY()
		w.pdf.SetFont("Helvetica", "", 10)
		w.color(textColor)
		w.pdf.CellFormat(labelWidth, lineHeight, w.tr(bar.Label), "", 0, "L", false, 0, "")

		x := pageMargin + labelWidth
		w.fill(gaugeTrack)
		w.pdf.Rect(x, y+4, b.MaxWidth, 8, "F")
		if bar.Width > 0 {
			w.fill(brandColor)
			w.pdf.Rect(x, y+4, bar.Width, 8, "F")
		}
		w.pdf.SetX(x + b.MaxWidth + 8)
		w.pdf.CellFormat(0, lineHeight, fmt.Sprintf("%d%%", bar.Value), "", 1, "L", false, 0, "")
		w.pdf.Ln(2)
	}
}

func (w *pdfWriter) recommendation(b model.RecommendationBlock) {
	w.heading("Credit recommendation")
	top := w.pdf.GetY()

	w.pdf.SetX(pageMargin + 10)
	w.pdf.SetFont("Helvetica", "B", 12)
	w.color(b.Color)
	w.pdf.CellFormat(0, 18, w.tr(b.Icon+" "+b.Headline), "", 1, "L", false, 0, "")
	w.pdf.SetX(pageMargin + 10)
	w.pdf.SetFont("Helvetica", "", 10)
	w.color(textColor)
	w.pdf.MultiCell(w.width()-10, 14, w.tr(b.Rationale), "", "L", false)
	w.pdf.SetX(pageMargin + 10)
	w.pdf.SetFont("Helvetica", "B", 11)
	w.pdf.CellFormat(0, 18, w.tr("Maximum recommended amount: "+b.MaxAmount), "", 1, "L", false, 0, "")

	w.fill(b.Color)
	w.pdf.Rect(pageMargin, top, 4, w.pdf.GetY()-top, "F")
}

func (w *pdfWriter) documents(b model.DocumentsBlock) {
	lines := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = l
		if i < len(b.Sizes) {
			lines[i] = fmt.Sprintf("%s (%s)", l, b.Sizes[i])
		}
	}
	w.lines(b.Title, lines, "- ")
}

func (w *pdfWriter) lines(title string, lines []string, bullet string) {
	w.heading(title)
	w.pdf.SetFont("Helvetica", "", 10)
	w.color(textColor)
	for _, l := range lines {
		w.pdf.CellFormat(0, lineHeight, w.tr(bullet+l), "", 1, "L", false, 0, "")
	}
}

// footer is pinned to the bottom margin of the current page and never
// triggers a page break.
func (w *pdfWriter) footer(b model.FooterBlock) {
	_, ph := w.pdf.GetPageSize()
	w.pdf.SetAutoPageBreak(false, 0)
	w.pdf.SetY(ph - pageMargin - footerHeight)
	w.pdf.SetFont("Helvetica", "I", 8)
	w.color(mutedColor)
	w.pdf.CellFormat(0, footerHeight, w.tr(b.Text), "T", 1, "C", false, 0, "")
}
