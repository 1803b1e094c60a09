package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
	"github.com/dmitrijs2005/gophsettings/internal/server/auth"
	"github.com/dmitrijs2005/gophsettings/internal/server/metrics"
)

type ctxKey string

const (
	AccountIDKey ctxKey = "accountID"
	RequestIDKey ctxKey = "requestID"
)

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.SettingsService_SignUp_FullMethodName: true,
	pb.SettingsService_Login_FullMethodName:  true,
}

func headerValue(ctx context.Context, name string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(name); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor tags the call with the caller's request id, or a new
// one, echoes it back in the response header and logs the outcome.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := headerValue(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "request handled",
		"method", info.FullMethod,
		"request_id", requestID,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	method := methodName(info.FullMethod)
	start := time.Now()

	resp, err := handler(ctx, req)

	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	return resp, err
}

// accessTokenInterceptor resolves the acting account from the access_token
// header for every non-public method.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := headerValue(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	accountID, err := auth.GetAccountIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, AccountIDKey, accountID)
	return handler(ctx, req)
}

// accountIDFromContext returns the acting account set by
// accessTokenInterceptor.
func accountIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(AccountIDKey).(int64)
	if !ok || id <= 0 {
		return 0, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}

func methodName(fullMethod string) string {
	for i := len(fullMethod) - 1; i >= 0; i-- {
		if fullMethod[i] == '/' {
			return fullMethod[i+1:]
		}
	}
	return fullMethod
}
