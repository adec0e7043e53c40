package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

var (
	_ port.ReportRenderer = (*JSONRenderer)(nil)
	_ port.ReportRenderer = (*TextRenderer)(nil)
)

// ---------------------------------------------------------------------------
// Dashboard view
// ---------------------------------------------------------------------------

// DashboardView is the on-screen projection of a composed report.
type DashboardView struct {
	Company        string              `json:"company"`
	Title          string              `json:"title"`
	Date           string              `json:"date"`
	Identity       []FieldView         `json:"identity"`
	Score          ScoreView           `json:"score"`
	Indicators     []IndicatorView     `json:"indicators"`
	Recommendation RecommendationView  `json:"recommendation"`
	WhatIf         WhatIfView          `json:"what_if"`
	Documents      []DocumentEntryView `json:"documents"`
	Footer         string              `json:"footer"`
}

type FieldView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ScoreView struct {
	Value      int     `json:"value"`
	OutOf      int     `json:"out_of"`
	Level      string  `json:"level"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	SweepRatio float64 `json:"sweep_ratio"`
}

type IndicatorView struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

type RecommendationView struct {
	Tier      string `json:"tier"`
	Icon      string `json:"icon"`
	Headline  string `json:"headline"`
	Rationale string `json:"rationale"`
	MaxAmount string `json:"max_amount"`
	Color     string `json:"color"`
}

type WhatIfView struct {
	Title   string   `json:"title"`
	Lines   []string `json:"lines"`
	Clamped bool     `json:"clamped"`
}

// DocumentEntryView is one row of the documents list. Size is empty for the
// "no documents" placeholder row.
type DocumentEntryView struct {
	Name string `json:"name"`
	Size string `json:"size,omitempty"`
}

// BuildView flattens the blocks of doc into a DashboardView.
func BuildView(doc model.Document) DashboardView {
	var v DashboardView
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case model.HeaderBlock:
			v.Company, v.Title, v.Date = b.CompanyName, b.Title, b.Date
		case model.IdentityBlock:
			for _, f := range b.Fields {
				v.Identity = append(v.Identity, FieldView(f))
			}
		case model.ScoreBadgeBlock:
			v.Score = ScoreView{
				Value:      b.Score,
				OutOf:      b.OutOf,
				Level:      b.RiskLevel,
				Label:      b.RiskLabel,
				Color:      hexColor(b.Color),
				SweepRatio: b.SweepRatio,
			}
		case model.IndicatorsBlock:
			for _, bar := range b.Bars {
				pct := 0.0
				if b.MaxWidth > 0 {
					pct = bar.Width / b.MaxWidth * 100
				}
				v.Indicators = append(v.Indicators, IndicatorView{Label: bar.Label, Value: bar.Value, Percent: pct})
			}
		case model.RecommendationBlock:
			v.Recommendation = RecommendationView{
				Tier:      b.Tier,
				Icon:      b.Icon,
				Headline:  b.Headline,
				Rationale: b.Rationale,
				MaxAmount: b.MaxAmount,
				Color:     hexColor(b.Color),
			}
		case model.WhatIfBlock:
			v.WhatIf = WhatIfView{Title: b.Title, Lines: b.Lines, Clamped: b.Clamped}
		case model.DocumentsBlock:
			for i, name := range b.Lines {
				entry := DocumentEntryView{Name: name}
				if i < len(b.Sizes) {
					entry.Size = b.Sizes[i]
				}
				v.Documents = append(v.Documents, entry)
			}
		case model.FooterBlock:
			v.Footer = b.Text
		}
	}
	return v
}

func hexColor(c valueobject.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ---------------------------------------------------------------------------
// JSON renderer
// ---------------------------------------------------------------------------

// JSONRenderer serves the dashboard view as JSON.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Format() string      { return "json" }
func (r *JSONRenderer) ContentType() string { return "application/json" }
func (r *JSONRenderer) Extension() string   { return ".json" }

func (r *JSONRenderer) Render(ctx context.Context, doc model.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(BuildView(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Text renderer
// ---------------------------------------------------------------------------

// textBarCells is the number of characters of a bar at 100%.
const textBarCells = 20

// TextRenderer prints a plain-text dashboard for terminals.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) Format() string      { return "text" }
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (r *TextRenderer) Extension() string   { return ".txt" }

func (r *TextRenderer) Render(ctx context.Context, doc model.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v := BuildView(doc)

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n%s | %s\n", v.Company, v.Title, v.Date)
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, f := range v.Identity {
		fmt.Fprintf(&b, "%-14s %s\n", f.Label+":", f.Value)
	}

	fmt.Fprintf(&b, "\nRisk score: %d/%d  %s\n", v.Score.Value, v.Score.OutOf, v.Score.Label)

	b.WriteString("\nFinancial indicators\n")
	for _, ind := range v.Indicators {
		fmt.Fprintf(&b, "  %-20s [%s] %3d%%\n", ind.Label, textBar(ind.Percent), ind.Value)
	}

	rec := v.Recommendation
	fmt.Fprintf(&b, "\n%s %s\n  %s\n  Maximum recommended amount: %s\n", rec.Icon, rec.Headline, rec.Rationale, rec.MaxAmount)

	fmt.Fprintf(&b, "\n%s\n", v.WhatIf.Title)
	for _, line := range v.WhatIf.Lines {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	b.WriteString("\nUploaded documents\n")
	for _, d := range v.Documents {
		if d.Size == "" {
			fmt.Fprintf(&b, "  %s\n", d.Name)
			continue
		}
		fmt.Fprintf(&b, "  - %s (%s)\n", d.Name, d.Size)
	}

	fmt.Fprintf(&b, "\n%s\n", v.Footer)
	return b.Bytes(), nil
}

func textBar(percent float64) string {
	filled := int(percent/100*textBarCells + 0.5)
	filled = max(0, min(textBarCells, filled))
	return strings.Repeat("#", filled) + strings.Repeat("-", textBarCells-filled)
}
