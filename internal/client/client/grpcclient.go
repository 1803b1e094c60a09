package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

type GRPCClient struct {
	conn *grpc.ClientConn
	api  pb.SettingsServiceClient

	mu          sync.RWMutex
	accessToken string
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{}
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewSettingsServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *GRPCClient) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := c.AccessToken(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SignUp creates an account and keeps its access token for later calls.
// password is sent as is; the caller owns and wipes it.
func (c *GRPCClient) SignUp(ctx context.Context, email, nickname string, password []byte) (*pb.Account, error) {
	resp, err := c.api.SignUp(ctx, &pb.SignUpRequest{Email: email, Nickname: nickname, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccount(), nil
}

func (c *GRPCClient) Login(ctx context.Context, email string, password []byte) (*pb.Account, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.SetAccessToken(resp.GetAccessToken())
	return resp.GetAccount(), nil
}

func (c *GRPCClient) Account(ctx context.Context) (*pb.Account, error) {
	return account(c.api.GetAccount(ctx, &pb.GetAccountRequest{}))
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Account, error) {
	return account(c.api.UpdateProfile(ctx, req))
}

func (c *GRPCClient) UpdatePassword(ctx context.Context, password, confirm []byte) (*pb.Account, error) {
	return account(c.api.UpdatePassword(ctx, &pb.UpdatePasswordRequest{NewPassword: password, NewPasswordConfirm: confirm}))
}

func (c *GRPCClient) UpdateNickname(ctx context.Context, nickname string) (*pb.Account, error) {
	return account(c.api.UpdateNickname(ctx, &pb.UpdateNicknameRequest{Nickname: nickname}))
}

func (c *GRPCClient) UpdateNotifications(ctx context.Context, n *pb.Notifications) (*pb.Account, error) {
	return account(c.api.UpdateNotifications(ctx, &pb.UpdateNotificationsRequest{Notifications: n}))
}

func (c *GRPCClient) UpdateTag(ctx context.Context, op, title string) (*pb.Account, error) {
	return account(c.api.UpdateTag(ctx, &pb.UpdateTagRequest{Operation: op, Title: title}))
}

func (c *GRPCClient) UpdateZone(ctx context.Context, op, zone string) (*pb.Account, error) {
	return account(c.api.UpdateZone(ctx, &pb.UpdateZoneRequest{Operation: op, Zone: zone}))
}

func (c *GRPCClient) Tags(ctx context.Context) ([]string, error) {
	return tags(c.api.GetTags(ctx, &pb.GetTagsRequest{}))
}

func (c *GRPCClient) AllTags(ctx context.Context) ([]string, error) {
	return tags(c.api.ListAllTags(ctx, &pb.ListAllTagsRequest{}))
}

func (c *GRPCClient) Zones(ctx context.Context) ([]string, error) {
	return zones(c.api.GetZones(ctx, &pb.GetZonesRequest{}))
}

func (c *GRPCClient) AllZones(ctx context.Context) ([]string, error) {
	return zones(c.api.ListAllZones(ctx, &pb.ListAllZonesRequest{}))
}

func account(resp *pb.AccountResponse, err error) (*pb.Account, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetAccount(), nil
}

func tags(resp *pb.TagsResponse, err error) ([]string, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetTags(), nil
}

func zones(resp *pb.ZonesResponse, err error) ([]string, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetZones(), nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
