package grpc

import (
	"bytes"
	"io"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/internal/infrastructure/render"
)

// Indicators are the declared financial indicators, each in [0,100].
type Indicators struct {
	Sales         int `json:"sales"`
	Liquidity     int `json:"liquidity"`
	Profitability int `json:"profitability"`
	Reputation    int `json:"reputation"`
}

// Document is an uploaded file. Content travels base64-encoded.
type Document struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"content"`
}

type EvaluateRequest struct {
	CompanyName    string     `json:"company_name"`
	TaxID          string     `json:"tax_id"`
	Industry       string     `json:"industry"`
	SocialMediaURL string     `json:"social_media_url"`
	Indicators     Indicators `json:"indicators"`
	Documents      []Document `json:"documents"`
	StageDocuments bool       `json:"stage_documents"`
}

type EvaluateResponse struct {
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

// ExportReportRequest evaluates and renders in one call; evaluations are not
// kept between requests.
type ExportReportRequest struct {
	Evaluation EvaluateRequest `json:"evaluation"`
	Format     string          `json:"format"`
}

type ExportReportResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

func (r *EvaluateRequest) toDTO() dto.EvaluateCompanyRequest {
	files := make([]model.CandidateFile, len(r.Documents))
	for i, d := range r.Documents {
		content := d.Content
		files[i] = model.CandidateFile{
			Name:      d.FileName,
			SizeBytes: uint64(len(content)),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(content)), nil
			},
		}
	}
	return dto.EvaluateCompanyRequest{
		CompanyName:    r.CompanyName,
		TaxID:          r.TaxID,
		Industry:       r.Industry,
		SocialMediaURL: r.SocialMediaURL,
		Sales:          r.Indicators.Sales,
		Liquidity:      r.Indicators.Liquidity,
		Profitability:  r.Indicators.Profitability,
		Reputation:     r.Indicators.Reputation,
		Files:          files,
		StageDocuments: r.StageDocuments,
	}
}
