package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pymecredit/creditrisk/internal/application/dto"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// StageDocumentsUseCase uploads an intake's documents to object storage and
// records them in the optional document registry.
type StageDocumentsUseCase struct {
	store     port.ObjectStore
	registry  port.DocumentRegistry
	publisher port.EventPublisher
	recorder  port.EvaluationRecorder
}

// NewStageDocumentsUseCase wires dependencies. registry may be nil.
func NewStageDocumentsUseCase(
	store port.ObjectStore,
	registry port.DocumentRegistry,
	publisher port.EventPublisher,
	recorder port.EvaluationRecorder,
) *StageDocumentsUseCase {
	return &StageDocumentsUseCase{
		store:     store,
		registry:  registry,
		publisher: publisher,
		recorder:  orNoopRecorder(recorder),
	}
}

// Execute stages every document held by intake under companyID. Documents
// stored before a failure stay stored and are returned with the error.
func (uc *StageDocumentsUseCase) Execute(
	ctx context.Context,
	intake *service.DocumentIntake,
	companyID string,
) (_ dto.StageResult, err error) {
	ctx, span := tracer.Start(ctx, "StageDocuments")
	defer endSpan(span, &err)

	// 1. Put every document, stopping at the first failure.
	staged, stageErr := intake.Stage(ctx, companyID, uc.store)
	uc.recorder.RecordStaging(ctx, len(staged), stageErr != nil)
	result := dto.StageResult{Staged: dto.ToStagedDocuments(staged)}

	// 2. Register what reached storage, including a partial batch.
	if uc.registry != nil && len(staged) > 0 {
		if err := uc.registry.RecordStaged(ctx, companyID, staged); err != nil {
			result.Notice = valueobject.Failure("Error", "Documents were stored but could not be registered.")
			return result, fmt.Errorf("register documents: %w", err)
		}
	}

	if stageErr != nil {
		result.Notice = stagingNotice(stageErr)
		return result, fmt.Errorf("stage documents: %w", stageErr)
	}

	// 3. Publish domain events.
	if err := uc.publisher.Publish(ctx, intake.ClearEvents()...); err != nil {
		return result, fmt.Errorf("publish events: %w", err)
	}

	if len(staged) == 0 {
		result.Notice = valueobject.Notice{OK: true, Title: "Nothing to upload", Message: "No documents are staged.", Severity: valueobject.SeverityInfo}
		return result, nil
	}
	result.Notice = valueobject.Success("Files processed", "All files were uploaded to storage.")
	return result, nil
}

func stagingNotice(err error) valueobject.Notice {
	var se *model.StagingError
	switch {
	case errors.Is(err, model.ErrMissingCompanyIdentifier):
		return valueobject.Failure("Error", "No company name has been defined.")
	case errors.As(err, &se):
		return valueobject.Failure("Upload failed", fmt.Sprintf("%s: %v", se.FileName, se.Err))
	default:
		return valueobject.Failure("Upload failed", err.Error())
	}
}
