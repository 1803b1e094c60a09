// Package grpc exposes the account settings service over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/gophsettings/internal/logging"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

const accessTokenValidity = 24 * time.Hour

// AccountService is the part of services.AccountService the transport uses.
type AccountService interface {
	SignUp(ctx context.Context, form models.SignUpForm) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	GetTags(ctx context.Context, id int64) ([]string, error)
	GetZones(ctx context.Context, id int64) ([]string, error)
	ListAllTags(ctx context.Context) ([]string, error)
	ListAllZones(ctx context.Context) ([]string, error)
	UpdateProfile(ctx context.Context, id int64, p models.Profile) (*models.Account, error)
	UpdatePassword(ctx context.Context, id int64, form models.PasswordForm) (*models.Account, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) (*models.Account, error)
	UpdateNotifications(ctx context.Context, id int64, n models.Notifications) (*models.Account, error)
	UpdateTag(ctx context.Context, id int64, op models.Operation, title string) (*models.Account, error)
	UpdateZone(ctx context.Context, id int64, op models.Operation, key string) (*models.Account, error)
}

type GRPCServer struct {
	pb.UnimplementedSettingsServiceServer
	address   string
	accounts  AccountService
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.SettingsServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, as AccountService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the interceptor chain and registers
// the settings service on it.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.metricsInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterSettingsServiceServer(srv, s)
	return srv
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
