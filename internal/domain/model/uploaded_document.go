package model

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ContentSource opens the bytes of a document. Each call returns a fresh reader.
type ContentSource func() (io.ReadCloser, error)

// CandidateFile is a file offered for intake.
type CandidateFile struct {
	Name      string
	SizeBytes uint64
	Open      ContentSource
}

// UploadedDocument is a file admitted by intake. StorageKey is empty until
// the document has been staged.
type UploadedDocument struct {
	FileName   string
	SizeBytes  uint64
	Extension  string
	StorageKey string
	content    ContentSource
}

// NewUploadedDocument builds a document from an accepted candidate.
func NewUploadedDocument(c CandidateFile) UploadedDocument {
	return UploadedDocument{
		FileName:  c.Name,
		SizeBytes: c.SizeBytes,
		Extension: valueobject.ExtensionOf(c.Name),
		content:   c.Open,
	}
}

// StorageKeyFor derives the object key "{companyID}/{fileName}".
func (d UploadedDocument) StorageKeyFor(companyID string) string {
	return companyID + "/" + d.FileName
}

// Open returns the document content, or an empty reader when none was attached.
func (d UploadedDocument) Open() (io.ReadCloser, error) {
	if d.content == nil {
		return io.NopCloser(strings.NewReader("")), nil
	}
	return d.content()
}

// ContentType maps the extension to a MIME type for object storage.
func (d UploadedDocument) ContentType() string {
	switch d.Extension {
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	default:
		return "application/octet-stream"
	}
}

// HumanSize renders SizeBytes with base-1024 units, for example "1.5 KB".
func (d UploadedDocument) HumanSize() string {
	return FormatFileSize(d.SizeBytes)
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes using the largest unit up to GB, rounded to at
// most two decimals with trailing zeros dropped.
func FormatFileSize(bytes uint64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i, div := 0, uint64(1)
	for i < len(sizeUnits)-1 && bytes >= div*1024 {
		div *= 1024
		i++
	}
	v := float64(bytes) / float64(div)
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
