package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ReportComposer – single-page report layout
// ---------------------------------------------------------------------------

const (
	ReportTitle  = "Credit Evaluation Report"
	NotSpecified = "Not specified"
	NoDocuments  = "No documents uploaded"
	FooterText   = "PYME Credit Risk. Simulated score for guidance only; it is not a credit bureau decision."

	// IndicatorBarWidth is the length in points of a bar at 100%.
	IndicatorBarWidth = 300.0

	whatIfTitle    = "What if...?"
	documentsTitle = "Uploaded documents"
	reportPrefix   = "reporte_"
	dateLayout     = "2006-01-02 15:04 MST"
)

// ReportComposer lays out a ReportModel as an ordered list of blocks shared
// by every renderer.
type ReportComposer struct {
	barWidth float64
}

func NewReportComposer() *ReportComposer {
	return &ReportComposer{barWidth: IndicatorBarWidth}
}

// Compose builds the document for m. Missing optional fields fall back to
// fixed strings; only a nil model is an error.
func (c *ReportComposer) Compose(m *model.ReportModel) (model.Document, error) {
	if m == nil {
		return model.Document{}, model.ErrNilReportModel
	}

	profile := m.Profile()
	score := m.Score()
	level := score.Level()
	rec := m.Recommendation()

	doc := model.Document{
		FileName: ReportFileName(profile.Name, ".pdf"),
		Blocks: []model.Block{
			model.HeaderBlock{
				CompanyName: profile.DisplayName(),
				Title:       ReportTitle,
				Date:        m.EvaluatedAt().UTC().Format(dateLayout),
			},
			model.IdentityBlock{Fields: []model.Field{
				{Label: "Tax ID", Value: orNotSpecified(profile.TaxID)},
				{Label: "Industry", Value: orNotSpecified(profile.Industry)},
				{Label: "Social media", Value: orNotSpecified(profile.SocialMediaURL)},
			}},
			model.ScoreBadgeBlock{
				Score:      score.Int(),
				OutOf:      valueobject.MaxRiskScore,
				RiskLevel:  level.String(),
				RiskLabel:  level.Label(),
				Color:      level.Color(),
				SweepRatio: float64(score.Int()) / valueobject.MaxRiskScore,
			},
			c.indicators(m.Indicators()),
			model.RecommendationBlock{
				Tier:      rec.Tier.String(),
				Icon:      rec.Icon,
				Headline:  rec.Headline,
				Rationale: rec.Rationale,
				MaxAmount: rec.MaxAmount.Format(),
				Color:     level.Color(),
			},
			whatIfBlock(m.WhatIf()),
			documentsBlock(m.Documents()),
			model.FooterBlock{Text: FooterText},
		},
	}
	return doc, nil
}

func (c *ReportComposer) indicators(fi model.FinancialIndicators) model.IndicatorsBlock {
	block := model.IndicatorsBlock{MaxWidth: c.barWidth}
	for _, ind := range fi.Ordered() {
		block.Bars = append(block.Bars, model.IndicatorBar{
			Label: ind.Label,
			Value: ind.Value,
			Width: float64(ind.Value) / 100 * c.barWidth,
		})
	}
	return block
}

func whatIfBlock(r model.WhatIfResult) model.WhatIfBlock {
	block := model.WhatIfBlock{Title: whatIfTitle}
	for _, s := range r.Scenarios {
		block.Lines = append(block.Lines, fmt.Sprintf("%s: %d (+%d)", s.Label, s.ProjectedScore, s.Delta))
	}
	return block
}

func documentsBlock(docs []model.UploadedDocument) model.DocumentsBlock {
	if len(docs) == 0 {
		return model.DocumentsBlock{Title: documentsTitle, Lines: []string{NoDocuments}}
	}
	block := model.DocumentsBlock{Title: documentsTitle}
	for _, d := range docs {
		block.Lines = append(block.Lines, d.FileName)
		block.Sizes = append(block.Sizes, d.HumanSize())
	}
	return block
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSpecified
	}
	return s
}

// ReportFileName returns "reporte_{name}{ext}" with the default company
// name when name is blank. Whitespace and path separators become "_".
func ReportFileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultCompanyName
	}
	safe := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	return reportPrefix + safe + ext
}

// ComposeSummary lists what will be evaluated before scoring starts.
func ComposeSummary(profile model.CompanyProfile, documentCount int) []model.Field {
	social := NotSpecified
	if profile.HasSocialLink() {
		social = "Yes"
	}
	company := NotSpecified
	if profile.HasName() {
		company = strings.TrimSpace(profile.Name)
	}
	return []model.Field{
		{Label: "Company", Value: company},
		{Label: "Documents", Value: strconv.Itoa(documentCount) + " files"},
		{Label: "Tax ID", Value: orNotSpecified(profile.TaxID)},
		{Label: "Social media", Value: social},
	}
}
