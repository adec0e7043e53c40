package dto

import (
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// EvaluateCompanyRequest carries everything needed for one evaluation.
type EvaluateCompanyRequest struct {
	CompanyName    string `json:"company_name"`
	TaxID          string `json:"tax_id"`
	Industry       string `json:"industry"`
	SocialMediaURL string `json:"social_media_url"`

	Sales         int `json:"sales"`
	Liquidity     int `json:"liquidity"`
	Profitability int `json:"profitability"`
	Reputation    int `json:"reputation"`

	Files []model.CandidateFile `json:"-"`

	// StageDocuments uploads the accepted files to object storage before
	// scoring.
	StageDocuments bool `json:"stage_documents"`
}

// Profile returns the company profile described by the request.
func (r EvaluateCompanyRequest) Profile() model.CompanyProfile {
	return model.CompanyProfile{
		Name:           r.CompanyName,
		TaxID:          r.TaxID,
		Industry:       r.Industry,
		SocialMediaURL: r.SocialMediaURL,
	}
}

// ExportReportRequest selects the output format for a finished evaluation.
type ExportReportRequest struct {
	Report *model.ReportModel
	Format string
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// EvaluationResponse is the outcome of EvaluateCompany.
type EvaluationResponse struct {
	Report   *model.ReportModel
	Rejected []string
	Staged   []StagedDocument
	Notices  []valueobject.Notice
}

// StagedDocument describes a document stored in object storage.
type StagedDocument struct {
	FileName   string `json:"file_name"`
	StorageKey string `json:"storage_key"`
	Size       string `json:"size"`
}

// StageResult is the outcome of StageDocuments. Staged lists the documents
// stored before any failure.
type StageResult struct {
	Staged []StagedDocument
	Notice valueobject.Notice
}

// DocumentListing is the registry view of a company's staged documents.
type DocumentListing struct {
	Company   string           `json:"company"`
	Documents []StagedDocument `json:"documents"`
}

// ExportedReport is a rendered report ready to be written or served.
type ExportedReport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ToStagedDocuments maps staged domain documents to DTOs.
func ToStagedDocuments(docs []model.UploadedDocument) []StagedDocument {
	out := make([]StagedDocument, len(docs))
	for i, d := range docs {
		out[i] = StagedDocument{FileName: d.FileName, StorageKey: d.StorageKey, Size: d.HumanSize()}
	}
	return out
}
