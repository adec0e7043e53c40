package model

import "github.com/pymecredit/creditrisk/internal/domain/valueobject"

// BlockKind names a section of a composed report.
type BlockKind string

const (
	BlockHeader         BlockKind = "header"
	BlockIdentity       BlockKind = "identity"
	BlockScoreBadge     BlockKind = "score_badge"
	BlockIndicators     BlockKind = "indicators"
	BlockRecommendation BlockKind = "recommendation"
	BlockWhatIf         BlockKind = "what_if"
	BlockDocuments      BlockKind = "documents"
	BlockFooter         BlockKind = "footer"
)

// Block is one laid-out section of a Document.
type Block interface {
	Kind() BlockKind
}

// Document is a composed single-page report. Renderers walk Blocks in order.
type Document struct {
	FileName string
	Blocks   []Block
}

type HeaderBlock struct {
	CompanyName string
	Title       string
	Date        string
}

// Field is a labelled value of the identity block.
type Field struct {
	Label string
	Value string
}

type IdentityBlock struct {
	Fields []Field
}

type ScoreBadgeBlock struct {
	Score      int
	OutOf      int
	RiskLevel  string
	RiskLabel  string
	Color      valueobject.RGB
	SweepRatio float64
}

// IndicatorBar is a horizontal bar whose Width is proportional to Value.
type IndicatorBar struct {
	Label string
	Value int
	Width float64
}

type IndicatorsBlock struct {
	MaxWidth float64
	Bars     []IndicatorBar
}

type RecommendationBlock struct {
	Tier      string
	Icon      string
	Headline  string
	Rationale string
	MaxAmount string
	Color     valueobject.RGB
}

type WhatIfBlock struct {
	Title   string
	Lines   []string
	Clamped bool
}

// DocumentsBlock lists uploaded file names. Sizes holds the matching
// human-readable sizes and is empty when no documents were uploaded.
type DocumentsBlock struct {
	Title string
	Lines []string
	Sizes []string
}

type FooterBlock struct {
	Text string
}

func (HeaderBlock) Kind() BlockKind         { return BlockHeader }
func (IdentityBlock) Kind() BlockKind       { return BlockIdentity }
func (ScoreBadgeBlock) Kind() BlockKind     { return BlockScoreBadge }
func (IndicatorsBlock) Kind() BlockKind     { return BlockIndicators }
func (RecommendationBlock) Kind() BlockKind { return BlockRecommendation }
func (WhatIfBlock) Kind() BlockKind         { return BlockWhatIf }
func (DocumentsBlock) Kind() BlockKind      { return BlockDocuments }
func (FooterBlock) Kind() BlockKind         { return BlockFooter }

// Kinds lists the block kinds of d in order.
func (d Document) Kinds() []BlockKind {
	kinds := make([]BlockKind, len(d.Blocks))
	for i, b := range d.Blocks {
		kinds[i] = b.Kind()
	}
	return kinds
}
