package render_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
)

func TestBuildView(t *testing.T) {
	v := render.BuildView(acmeReport(t))

	assert.Equal(t, "Acme", v.Company)
	assert.Equal(t, "2026-05-04 10:30 UTC", v.Date)
	assert.Equal(t, []render.FieldView{
		{Label: "Tax ID", Value: "123"},
		{Label: "Industry", Value: "Not specified"},
		{Label: "Social media", Value: "http://x"},
	}, v.Identity)

	assert.Equal(t, 100, v.Score.Value)
	assert.Equal(t, "LOW", v.Score.Level)
	assert.Equal(t, "#22c55e", v.Score.Color)

	require.Len(t, v.Indicators, 4)
	assert.Equal(t, "Sales", v.Indicators[0].Label)
	assert.InDelta(t, 85.0, v.Indicators[0].Percent, 1e-9)

	assert.Equal(t, "APPROVED", v.Recommendation.Tier)
	assert.Equal(t, "$50,000", v.Recommendation.MaxAmount)
	assert.Len(t, v.WhatIf.Lines, 3)
	assert.False(t, v.WhatIf.Clamped)
	assert.Equal(t, []render.DocumentEntryView{{Name: "a.pdf", Size: "1.5 KB"}}, v.Documents)
	assert.NotEmpty(t, v.Footer)
}

func TestBuildView_NoDocuments(t *testing.T) {
	v := render.BuildView(composedReport(t, model.CompanyProfile{Name: "Solo"}, nil))

	assert.Equal(t, []render.DocumentEntryView{{Name: "No documents uploaded"}}, v.Documents)
	// 60 + 5 (name) + 5 (perturbation)
	assert.Equal(t, 70, v.Score.Value)
	assert.Equal(t, "REVIEW", v.Recommendation.Tier)
	assert.Equal(t, "#eab308", v.Score.Color)
}

func TestJSONRenderer(t *testing.T) {
	r := render.NewJSONRenderer()
	assert.Equal(t, "json", r.Format())
	assert.Equal(t, ".json", r.Extension())

	out, err := r.Render(context.Background(), acmeReport(t))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "Acme", got["company"])
	score := got["score"].(map[string]any)
	assert.EqualValues(t, 100, score["value"])
	assert.Equal(t, false, got["what_if"].(map[string]any)["clamped"])
}

func TestTextRenderer(t *testing.T) {
	r := render.NewTextRenderer()
	assert.Equal(t, "text", r.Format())
	assert.Equal(t, "text/plain; charset=utf-8", r.ContentType())

	out, err := r.Render(context.Background(), acmeReport(t))
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "Acme\n"))
	assert.Contains(t, text, "Risk score: 100/100  Low risk")
	assert.Contains(t, text, "[#################---]  85%")
	assert.Contains(t, text, "[OK] Credit Approved")
	assert.Contains(t, text, "Maximum recommended amount: $50,000")
	assert.Contains(t, text, "  debt reduced 30%: 108 (+8)")
	assert.Contains(t, text, "  - a.pdf (1.5 KB)")
}

func TestTextRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := render.NewTextRenderer().Render(ctx, acmeReport(t))
	assert.ErrorIs(t, err, context.Canceled)
}
