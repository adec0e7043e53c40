package model

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/pkg/money"
)

func TestCompanyProfile_Presence(t *testing.T) {
	p := CompanyProfile{Name: "  Acme  ", TaxID: " ", SocialMediaURL: "http://x"}

	assert.True(t, p.HasName())
	assert.False(t, p.HasTaxID())
	assert.True(t, p.HasSocialLink())
	assert.Equal(t, "Acme", p.Identifier())
	assert.Equal(t, "Acme", p.Freeze().Name)
	assert.Equal(t, "", p.Freeze().TaxID)
}

func TestCompanyProfile_IdentifierFallsBackToTaxID(t *testing.T) {
	p := CompanyProfile{TaxID: "1234567890001"}
	assert.Equal(t, "1234567890001", p.Identifier())
	assert.Equal(t, DefaultCompanyName, p.DisplayName())
	assert.Equal(t, "", CompanyProfile{}.Identifier())
}

func TestNewFinancialIndicators(t *testing.T) {
	fi, err := NewFinancialIndicators(85, 68, 71, 79)
	require.NoError(t, err)

	ordered := fi.Ordered()
	require.Len(t, ordered, 4)
	assert.Equal(t, Indicator{Label: "Sales", Value: 85}, ordered[0])
	assert.Equal(t, Indicator{Label: "Digital reputation", Value: 79}, ordered[3])

	_, err = NewFinancialIndicators(85, 101, 71, 79)
	assert.ErrorIs(t, err, ErrIndicatorOutOfRange)
	assert.Contains(t, err.Error(), "Liquidity")

	_, err = NewFinancialIndicators(-1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrIndicatorOutOfRange)
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 Bytes"},
		{500, "500 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3072 GB"},
		{1234567, "1.18 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
		})
	}
}

func TestUploadedDocument(t *testing.T) {
	doc := NewUploadedDocument(CandidateFile{
		Name:      "Balance.PDF",
		SizeBytes: 2048,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("pdf-bytes")), nil
		},
	})

	assert.Equal(t, ".pdf", doc.Extension)
	assert.Equal(t, "application/pdf", doc.ContentType())
	assert.Equal(t, "Acme/Balance.PDF", doc.StorageKeyFor("Acme"))
	assert.Equal(t, "2 KB", doc.HumanSize())

	rc, err := doc.Open()
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "pdf-bytes", string(body))

	empty, err := UploadedDocument{FileName: "x.csv"}.Open()
	require.NoError(t, err)
	body, _ = io.ReadAll(empty)
	assert.Empty(t, body)
}

func TestStagingError(t *testing.T) {
	cause := errors.New("bucket not found")
	err := error(&StagingError{FileName: "a.pdf", StorageKey: "Acme/a.pdf", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "a.pdf")
	assert.Contains(t, err.Error(), "bucket not found")

	var se *StagingError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Acme/a.pdf", se.StorageKey)
}

func TestNewReportModel(t *testing.T) {
	docs := []UploadedDocument{{FileName: "a.pdf"}, {FileName: "b.csv"}}
	rec := CreditRecommendation{
		Tier:      valueobject.CreditTierApproved,
		MaxAmount: money.NewFromInt(50000, money.USD),
	}
	whatIf := WhatIfResult{Scenarios: []WhatIfScenario{{Label: "sales +20%", Delta: 6, ProjectedScore: 106}}}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m := NewReportModel(CompanyProfile{Name: " Acme "}, FinancialIndicators{Sales: 85},
		valueobject.NewRiskScore(100), rec, whatIf, docs, now)

	assert.NotEmpty(t, m.ID())
	assert.Equal(t, "Acme", m.Profile().Name)
	assert.Equal(t, []string{"a.pdf", "b.csv"}, m.DocumentNames())
	assert.Equal(t, now, m.EvaluatedAt())

	docs[0].FileName = "mutated.pdf"
	assert.Equal(t, "a.pdf", m.Documents()[0].FileName)
	returned := m.WhatIf()
	returned.Scenarios[0].Delta = 99
	assert.Equal(t, 6, m.WhatIf().Scenarios[0].Delta)

	require.Len(t, m.DomainEvents(), 1)
	completed, ok := m.DomainEvents()[0].(event.EvaluationCompleted)
	require.True(t, ok)
	assert.Equal(t, m.ID(), completed.AggregateID())
	assert.Equal(t, "APPROVED", completed.Tier)
	assert.Equal(t, "50000", completed.MaxAmount)
	assert.Equal(t, 2, completed.Documents)
}

func TestDocument_Kinds(t *testing.T) {
	d := Document{Blocks: []Block{HeaderBlock{}, FooterBlock{}}}
	assert.Equal(t, []BlockKind{BlockHeader, BlockFooter}, d.Kinds())
}
