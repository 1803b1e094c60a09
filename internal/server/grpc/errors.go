package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/metrics"
)

// toStatus maps a service error to a gRPC status. Domain rejections keep
// their message; field violations travel as a BadRequest detail. Anything
// else is logged and reported as Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var (
		ve  *common.ValidationError
		dup *common.DuplicateValueError
		nf  *common.NotFoundError
	)

	switch {
	case errors.As(err, &ve):
		metrics.MutationsRejectedTotal.WithLabelValues("validation").Inc()
		return badRequest(codes.InvalidArgument, ve.Error(), ve.Violations)
	case errors.As(err, &dup):
		metrics.MutationsRejectedTotal.WithLabelValues("duplicate").Inc()
		return badRequest(codes.AlreadyExists, dup.Error(), []common.Violation{{Field: dup.Field, Reason: "already in use"}})
	case errors.As(err, &nf):
		metrics.MutationsRejectedTotal.WithLabelValues("not_found").Inc()
		return status.Error(codes.NotFound, nf.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrMalformedZoneKey):
		metrics.MutationsRejectedTotal.WithLabelValues("malformed_zone_key").Inc()
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// badRequest attaches the violations to the status as a BadRequest detail.
func badRequest(code codes.Code, msg string, violations []common.Violation) error {
	br := &errdetails.BadRequest{}
	for _, v := range violations {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{Field: v.Field, Description: v.Reason})
	}
	st, err := status.New(code, msg).WithDetails(br)
	if err != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}
