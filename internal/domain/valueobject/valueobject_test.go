package valueobject

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRiskScore_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below zero", -12, 0},
		{"zero", 0, 0},
		{"mid", 73, 73},
		{"max", 100, 100},
		{"above max", 104, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRiskScore(tt.in).Int())
		})
	}
}

func TestRiskScore_Level(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelHigh},
		{49, RiskLevelHigh},
		{50, RiskLevelMedium},
		{79, RiskLevelMedium},
		{80, RiskLevelLow},
		{100, RiskLevelLow},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, NewRiskScore(tt.score).Level())
		})
	}
}

func TestRiskScore_String(t *testing.T) {
	assert.Equal(t, "87/100", NewRiskScore(87).String())
}

func TestRiskLevel_LabelsAndColors(t *testing.T) {
	assert.Equal(t, "Low risk", RiskLevelLow.Label())
	assert.Equal(t, "Medium risk", RiskLevelMedium.Label())
	assert.Equal(t, "High risk", RiskLevelHigh.Label())
	assert.NotEqual(t, RiskLevelLow.Color(), RiskLevelMedium.Color())
	assert.NotEqual(t, RiskLevelMedium.Color(), RiskLevelHigh.Color())
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		ext     string
		allowed bool
	}{
		{"pdf", "balance.pdf", ".pdf", true},
		{"upper case", "VENTAS.XLSX", ".xlsx", true},
		{"legacy excel", "flujo.xls", ".xls", true},
		{"csv", "a.csv", ".csv", true},
		{"text", "notes.TXT", ".txt", true},
		{"executable", "setup.exe", ".exe", false},
		{"no extension", "README", "", false},
		{"double extension", "report.pdf.exe", ".exe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := ExtensionOf(tt.file)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.allowed, IsAllowedExtension(ext))
		})
	}
}

func TestNotice(t *testing.T) {
	ok := Success("Done", "all good")
	assert.True(t, ok.OK)
	assert.Equal(t, SeveritySuccess, ok.Severity)

	bad := Failure("Error", "broken")
	assert.False(t, bad.OK)
	assert.Equal(t, SeverityError, bad.Severity)
}

func TestCreditTier(t *testing.T) {
	assert.True(t, CreditTier{}.IsZero())
	assert.False(t, CreditTierApproved.IsZero())
	assert.True(t, CreditTierReview.Equal(CreditTierReview))
	assert.False(t, CreditTierReview.Equal(CreditTierDenied))
	assert.Equal(t, "DENIED", CreditTierDenied.String())
}
