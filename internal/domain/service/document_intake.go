package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
	"github.com/pymecredit/creditrisk/pkg/events"
)

// DefaultMaxFiles is the staging cap when none is configured.
const DefaultMaxFiles = 5

// Rejection names a candidate that was not admitted and why.
type Rejection struct {
	FileName string
	Reason   error
}

// IntakeResult is the outcome of one Accept call.
type IntakeResult struct {
	Accepted []model.UploadedDocument
	Rejected []Rejection
	Notices  []valueobject.Notice
}

// RejectedNames returns the rejected file names in candidate order.
func (r IntakeResult) RejectedNames() []string {
	names := make([]string, len(r.Rejected))
	for i, rej := range r.Rejected {
		names[i] = rej.FileName
	}
	return names
}

// DocumentIntake validates candidate files and holds the admitted ones
// until they are staged to object storage. It is owned by a single caller.
type DocumentIntake struct {
	events.EventCollector
	maxFiles  int
	documents []model.UploadedDocument
}

// NewDocumentIntake returns an empty intake capped at maxFiles documents.
// A non-positive cap selects DefaultMaxFiles.
func NewDocumentIntake(maxFiles int) *DocumentIntake {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &DocumentIntake{maxFiles: maxFiles}
}

func (in *DocumentIntake) MaxFiles() int { return in.maxFiles }

func (in *DocumentIntake) Count() int { return len(in.documents) }

// Documents returns a copy of the staged documents in intake order.
func (in *DocumentIntake) Documents() []model.UploadedDocument {
	out := make([]model.UploadedDocument, len(in.documents))
	copy(out, in.documents)
	return out
}

// Accept filters candidates by extension and admits the valid ones. Files
// of an unsupported type are rejected one by one. When the valid subset
// would push the intake past its cap the whole batch is rejected, nothing
// is admitted and ErrFileLimitExceeded is returned.
func (in *DocumentIntake) Accept(candidates []model.CandidateFile) (IntakeResult, error) {
	var (
		result IntakeResult
		valid  []model.CandidateFile
	)
	for _, c := range candidates {
		ext := valueobject.ExtensionOf(c.Name)
		if !valueobject.IsAllowedExtension(ext) {
			result.Rejected = append(result.Rejected, Rejection{
				FileName: c.Name,
				Reason:   fmt.Errorf("%w: %q", model.ErrUnsupportedFileType, ext),
			})
			continue
		}
		valid = append(valid, c)
	}

	if len(result.Rejected) > 0 {
		result.Notices = append(result.Notices, valueobject.Failure(
			"Invalid files",
			"Only these file types are allowed: "+strings.Join(valueobject.AllowedExtensions, ", "),
		))
	}

	if len(in.documents)+len(valid) > in.maxFiles {
		limitErr := fmt.Errorf("%w: maximum %d files allowed", model.ErrFileLimitExceeded, in.maxFiles)
		result.Rejected = result.Rejected[:0]
		for _, c := range candidates {
			result.Rejected = append(result.Rejected, Rejection{FileName: c.Name, Reason: limitErr})
		}
		result.Notices = append(result.Notices, valueobject.Failure(
			"Limit exceeded",
			fmt.Sprintf("Maximum %d files allowed", in.maxFiles),
		))
		return result, limitErr
	}

	for _, c := range valid {
		doc := model.NewUploadedDocument(c)
		in.documents = append(in.documents, doc)
		result.Accepted = append(result.Accepted, doc)
	}
	if len(valid) > 0 {
		result.Notices = append(result.Notices, valueobject.Success(
			"Files loaded",
			fmt.Sprintf("%d file(s) loaded successfully", len(valid)),
		))
	}
	return result, nil
}

// Remove deletes the document at index. Later documents shift down by one.
func (in *DocumentIntake) Remove(index int) (model.UploadedDocument, error) {
	if index < 0 || index >= len(in.documents) {
		return model.UploadedDocument{}, fmt.Errorf("%w: %d not in [0,%d)",
			model.ErrDocumentIndexOutOfRange, index, len(in.documents))
	}
	removed := in.documents[index]
	in.documents = append(in.documents[:index], in.documents[index+1:]...)
	return removed, nil
}

// Stage puts every staged document into store under
// "{companyID}/{fileName}", one at a time. It stops at the first failure
// and returns the documents stored so far with a *model.StagingError naming
// the file. An empty companyID is refused before any call to store.
func (in *DocumentIntake) Stage(ctx context.Context, companyID string, store port.ObjectStore) ([]model.UploadedDocument, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, model.ErrMissingCompanyIdentifier
	}

	staged := make([]model.UploadedDocument, 0, len(in.documents))
	for i := range in.documents {
		doc := in.documents[i]
		key := doc.StorageKeyFor(companyID)
		if err := putDocument(ctx, store, key, doc); err != nil {
			return staged, &model.StagingError{FileName: doc.FileName, StorageKey: key, Err: err}
		}
		in.documents[i].StorageKey = key
		doc.StorageKey = key
		staged = append(staged, doc)
	}

	if len(staged) > 0 {
		keys := make([]string, len(staged))
		for i, d := range staged {
			keys[i] = d.StorageKey
		}
		in.Record(event.NewDocumentsStaged(companyID, keys))
	}
	return staged, nil
}

func putDocument(ctx context.Context, store port.ObjectStore, key string, doc model.UploadedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := doc.Open()
	if err != nil {
		return fmt.Errorf("open content: %w", err)
	}
	defer body.Close()

	if _, err := store.PutObject(ctx, key, body, int64(doc.SizeBytes), doc.ContentType()); err != nil {
		return err
	}
	return nil
}
