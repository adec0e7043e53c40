package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pymecredit/creditrisk/internal/application/usecase"
	"github.com/pymecredit/creditrisk/internal/domain/model"
)

// toStatus maps use-case errors onto gRPC status codes.
func toStatus(err error) error {
	var staging *model.StagingError
	switch {
	case errors.Is(err, model.ErrIndicatorOutOfRange),
		errors.Is(err, model.ErrUnsupportedFileType),
		errors.Is(err, usecase.ErrUnknownFormat):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrFileLimitExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, model.ErrMissingCompanyIdentifier):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &staging):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
