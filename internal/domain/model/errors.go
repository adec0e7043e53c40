package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFileType      = errors.New("unsupported file type")
	ErrFileLimitExceeded        = errors.New("file limit exceeded")
	ErrMissingCompanyIdentifier = errors.New("company identifier is required")
	ErrDocumentIndexOutOfRange  = errors.New("document index out of range")
	ErrIndicatorOutOfRange      = errors.New("financial indicator out of range")
	ErrNilReportModel           = errors.New("report model is nil")
)

// StagingError reports the document that failed to reach object storage.
type StagingError struct {
	FileName   string
	StorageKey string
	Err        error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("stage %q: %v", e.FileName, e.Err)
}

func (e *StagingError) Unwrap() error { return e.Err }
