package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// errBadRequest marks malformed form input.
var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error   string               `json:"error"`
	Notices []valueobject.Notice `json:"notices,omitempty"`
}

func statusFor(err error) int {
	var staging *model.StagingError
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrIndicatorOutOfRange),
		errors.Is(err, model.ErrUnsupportedFileType),
		errors.Is(err, usecase.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrMissingCompanyIdentifier):
		return http.StatusPreconditionFailed
	case errors.Is(err, model.ErrFileLimitExceeded):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &staging):
		return http.StatusBadGateway
	case errors.Is(err, usecase.ErrRegistryUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error, notices []valueobject.Notice) {
	writeJSON(w, statusFor(err), errorBody{Error: err.Error(), Notices: notices})
}
