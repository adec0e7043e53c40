package model

import "strings"

// DefaultCompanyName is shown wherever a company has not declared a name.
const DefaultCompanyName = "Mi Empresa PYME"

// CompanyProfile is the declared identity of the evaluated company. Callers
// edit it freely during intake; Freeze yields the copy used by an evaluation.
type CompanyProfile struct {
	Name           string `json:"name" yaml:"name"`
	TaxID          string `json:"tax_id" yaml:"tax_id"`
	Industry       string `json:"industry" yaml:"industry"`
	SocialMediaURL string `json:"social_media_url,omitempty" yaml:"social_media_url"`
}

// Freeze returns a trimmed copy of the profile.
func (p CompanyProfile) Freeze() CompanyProfile {
	return CompanyProfile{
		Name:           strings.TrimSpace(p.Name),
		TaxID:          strings.TrimSpace(p.TaxID),
		Industry:       strings.TrimSpace(p.Industry),
		SocialMediaURL: strings.TrimSpace(p.SocialMediaURL),
	}
}

func (p CompanyProfile) HasName() bool       { return strings.TrimSpace(p.Name) != "" }
func (p CompanyProfile) HasTaxID() bool      { return strings.TrimSpace(p.TaxID) != "" }
func (p CompanyProfile) HasSocialLink() bool { return strings.TrimSpace(p.SocialMediaURL) != "" }

// Identifier returns the key under which the company's documents are stored:
// the declared name, or the tax id when no name was given.
func (p CompanyProfile) Identifier() string {
	if p.HasName() {
		return strings.TrimSpace(p.Name)
	}
	return strings.TrimSpace(p.TaxID)
}

// DisplayName returns the name or DefaultCompanyName.
func (p CompanyProfile) DisplayName() string {
	if p.HasName() {
		return strings.TrimSpace(p.Name)
	}
	return DefaultCompanyName
}
