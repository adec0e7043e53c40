package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymecredit/creditrisk/internal/domain/event"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/service"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

type putCall struct {
	key         string
	body        string
	size        int64
	contentType string
}

type mockObjectStore struct {
	calls   []putCall
	putFunc func(key string) error
}

func (m *mockObjectStore) PutObject(_ context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	b, _ := io.ReadAll(body)
	m.calls = append(m.calls, putCall{key: key, body: string(b), size: size, contentType: contentType})
	if m.putFunc != nil {
		if err := m.putFunc(key); err != nil {
			return "", err
		}
	}
	return "documentos/" + key, nil
}

func candidate(name string) model.CandidateFile {
	content := "content of " + name
	return model.CandidateFile{
		Name:      name,
		SizeBytes: uint64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func candidates(names ...string) []model.CandidateFile {
	out := make([]model.CandidateFile, len(names))
	for i, n := range names {
		out[i] = candidate(n)
	}
	return out
}

// ---------------------------------------------------------------------------
// Accept
// ---------------------------------------------------------------------------

func TestDocumentIntake_DefaultCap(t *testing.T) {
	assert.Equal(t, service.DefaultMaxFiles, service.NewDocumentIntake(0).MaxFiles())
	assert.Equal(t, 10, service.NewDocumentIntake(10).MaxFiles())
}

func TestDocumentIntake_PartialAcceptanceOnType(t *testing.T) {
	intake := service.NewDocumentIntake(5)

	result, err := intake.Accept(candidates("setup.exe", "ventas.csv"))
	require.NoError(t, err)

	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "ventas.csv", result.Accepted[0].FileName)
	assert.Equal(t, []string{"setup.exe"}, result.RejectedNames())
	assert.ErrorIs(t, result.Rejected[0].Reason, model.ErrUnsupportedFileType)
	assert.Equal(t, 1, intake.Count())

	var failures int
	for _, n := range result.Notices {
		if !n.OK {
			failures++
			assert.Contains(t, n.Message, ".csv, .txt, .pdf, .xlsx, .xls")
		}
	}
	assert.Equal(t, 1, failures)
}

func TestDocumentIntake_CaseInsensitiveExtension(t *testing.T) {
	intake := service.NewDocumentIntake(5)

	result, err := intake.Accept(candidates("BALANCE.PDF", "Flujo.XLS"))
	require.NoError(t, err)
	require.Len(t, result.Accepted, 2)
	assert.Equal(t, ".pdf", result.Accepted[0].Extension)
	assert.Equal(t, ".xls", result.Accepted[1].Extension)
}

func TestDocumentIntake_CapRejectsWholeBatch(t *testing.T) {
	intake := service.NewDocumentIntake(5)

	result, err := intake.Accept(candidates("1.pdf", "2.pdf", "3.pdf", "4.pdf", "5.pdf", "6.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFileLimitExceeded)
	assert.Contains(t, err.Error(), "5")
	assert.Empty(t, result.Accepted)
	assert.Len(t, result.Rejected, 6)
	assert.Equal(t, 0, intake.Count())
}

func TestDocumentIntake_CapCountsAlreadyStaged(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("1.pdf", "2.pdf", "3.pdf"))
	require.NoError(t, err)

	result, err := intake.Accept(candidates("4.pdf", "5.pdf", "6.pdf", "bad.exe"))
	assert.ErrorIs(t, err, model.ErrFileLimitExceeded)
	assert.Len(t, result.Rejected, 4)
	assert.Equal(t, 3, intake.Count())

	last := result.Notices[len(result.Notices)-1]
	assert.False(t, last.OK)
	assert.Equal(t, "Maximum 5 files allowed", last.Message)
}

func TestDocumentIntake_InvalidFilesDoNotCountTowardsCap(t *testing.T) {
	intake := service.NewDocumentIntake(2)

	result, err := intake.Accept(candidates("a.pdf", "b.csv", "c.exe", "d.zip"))
	require.NoError(t, err)
	assert.Len(t, result.Accepted, 2)
	assert.Len(t, result.Rejected, 2)
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestDocumentIntake_RemoveIsPositional(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("a.pdf", "b.pdf", "c.pdf"))
	require.NoError(t, err)

	removed, err := intake.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", removed.FileName)

	docs := intake.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "a.pdf", docs[0].FileName)
	assert.Equal(t, "c.pdf", docs[1].FileName)

	removed, err = intake.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "c.pdf", removed.FileName)
}

func TestDocumentIntake_RemoveOutOfRange(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("a.pdf"))
	require.NoError(t, err)

	for _, idx := range []int{-1, 1, 7} {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			_, err := intake.Remove(idx)
			assert.ErrorIs(t, err, model.ErrDocumentIndexOutOfRange)
		})
	}
	assert.Equal(t, 1, intake.Count())
}

// ---------------------------------------------------------------------------
// Stage
// ---------------------------------------------------------------------------

func TestDocumentIntake_Stage(t *testing.T) {
	intake := service.NewDocumentIntake(10)
	_, err := intake.Accept(candidates("balance.pdf", "ventas.csv"))
	require.NoError(t, err)
	store := &mockObjectStore{}

	staged, err := intake.Stage(context.Background(), " Acme ", store)
	require.NoError(t, err)

	require.Len(t, store.calls, 2)
	assert.Equal(t, "Acme/balance.pdf", store.calls[0].key)
	assert.Equal(t, "content of balance.pdf", store.calls[0].body)
	assert.Equal(t, "application/pdf", store.calls[0].contentType)
	assert.Equal(t, int64(len("content of balance.pdf")), store.calls[0].size)
	assert.Equal(t, "Acme/ventas.csv", store.calls[1].key)
	assert.Equal(t, "text/csv", store.calls[1].contentType)

	require.Len(t, staged, 2)
	assert.Equal(t, "Acme/ventas.csv", staged[1].StorageKey)
	assert.Equal(t, "Acme/balance.pdf", intake.Documents()[0].StorageKey)

	evts := intake.ClearEvents()
	require.Len(t, evts, 1)
	stagedEvt, ok := evts[0].(event.DocumentsStaged)
	require.True(t, ok)
	assert.Equal(t, []string{"Acme/balance.pdf", "Acme/ventas.csv"}, stagedEvt.StorageKeys)
}

func TestDocumentIntake_StageRequiresCompanyID(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("a.pdf"))
	require.NoError(t, err)
	store := &mockObjectStore{}

	_, err = intake.Stage(context.Background(), "  ", store)
	assert.ErrorIs(t, err, model.ErrMissingCompanyIdentifier)
	assert.Empty(t, store.calls)
}

func TestDocumentIntake_StageFailsFast(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("a.pdf", "b.pdf", "c.pdf"))
	require.NoError(t, err)

	cause := errors.New("access denied")
	store := &mockObjectStore{putFunc: func(key string) error {
		if key == "Acme/b.pdf" {
			return cause
		}
		return nil
	}}

	staged, err := intake.Stage(context.Background(), "Acme", store)
	require.Error(t, err)

	var se *model.StagingError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "b.pdf", se.FileName)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "access denied")

	assert.Len(t, store.calls, 2)
	require.Len(t, staged, 1)
	assert.Equal(t, "a.pdf", staged[0].FileName)
	assert.Empty(t, intake.Events())
}

func TestDocumentIntake_StageHonoursCancellation(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	_, err := intake.Accept(candidates("a.pdf"))
	require.NoError(t, err)
	store := &mockObjectStore{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = intake.Stage(ctx, "Acme", store)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.calls)
}

func TestDocumentIntake_StageEmptyIsNoop(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	store := &mockObjectStore{}

	staged, err := intake.Stage(context.Background(), "Acme", store)
	require.NoError(t, err)
	assert.Empty(t, staged)
	assert.Empty(t, intake.Events())
}

func TestDocumentIntake_AcceptNotices(t *testing.T) {
	intake := service.NewDocumentIntake(5)
	result, err := intake.Accept(candidates("a.pdf", "b.txt"))
	require.NoError(t, err)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, valueobject.SeveritySuccess, result.Notices[0].Severity)
	assert.Equal(t, "2 file(s) loaded successfully", result.Notices[0].Message)
}
