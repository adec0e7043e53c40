package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
)

// ErrRegistryUnavailable is returned when no document registry is configured.
var ErrRegistryUnavailable = errors.New("document registry not configured")

// ListDocumentsUseCase reads back the documents a company has staged.
type ListDocumentsUseCase struct {
	registry port.DocumentRegistry
}

// NewListDocumentsUseCase wires the registry. registry may be nil, in which
// case every call fails with ErrRegistryUnavailable.
func NewListDocumentsUseCase(registry port.DocumentRegistry) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{registry: registry}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, companyID string) (_ dto.DocumentListing, err error) {
	ctx, span := tracer.Start(ctx, "ListDocuments")
	defer endSpan(span, &err)

	if uc.registry == nil {
		return dto.DocumentListing{}, ErrRegistryUnavailable
	}
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return dto.DocumentListing{}, model.ErrMissingCompanyIdentifier
	}

	docs, err := uc.registry.ListByCompany(ctx, companyID)
	if err != nil {
		return dto.DocumentListing{}, fmt.Errorf("list documents: %w", err)
	}
	return dto.DocumentListing{Company: companyID, Documents: dto.ToStagedDocuments(docs)}, nil
}
