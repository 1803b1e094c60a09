package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
	"github.com/dmitrijs2005/gophsettings/internal/server/auth"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.AuthResponse, error) {
	form := models.SignUpForm{Email: req.GetEmail(), Nickname: req.GetNickname(), Password: string(req.GetPassword())}
	account, err := s.accounts.SignUp(ctx, form)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Signed up", "account_id", account.ID)
	return s.authResponse(ctx, account)
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	account, err := s.accounts.Login(ctx, req.GetEmail(), string(req.GetPassword()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.authResponse(ctx, account)
}

func (s *GRPCServer) authResponse(ctx context.Context, account *models.Account) (*pb.AuthResponse, error) {
	token, err := auth.GenerateToken(account.ID, s.jwtSecret, accessTokenValidity)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.AuthResponse{Account: accountView(account), AccessToken: token}, nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, _ *pb.GetAccountRequest) (*pb.AccountResponse, error) {
	return s.account(ctx, s.accounts.GetAccount)
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.AccountResponse, error) {
	p := models.Profile{
		Bio:          req.GetBio(),
		URL:          req.GetUrl(),
		Occupation:   req.GetOccupation(),
		Location:     req.GetLocation(),
		ProfileImage: req.GetProfileImage(),
	}
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdateProfile(ctx, id, p)
	})
}

func (s *GRPCServer) UpdatePassword(ctx context.Context, req *pb.UpdatePasswordRequest) (*pb.AccountResponse, error) {
	form := models.PasswordForm{NewPassword: string(req.GetNewPassword()), NewPasswordConfirm: string(req.GetNewPasswordConfirm())}
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdatePassword(ctx, id, form)
	})
}

func (s *GRPCServer) UpdateNickname(ctx context.Context, req *pb.UpdateNicknameRequest) (*pb.AccountResponse, error) {
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdateNickname(ctx, id, req.GetNickname())
	})
}

func (s *GRPCServer) UpdateNotifications(ctx context.Context, req *pb.UpdateNotificationsRequest) (*pb.AccountResponse, error) {
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdateNotifications(ctx, id, notifications(req.GetNotifications()))
	})
}

func (s *GRPCServer) UpdateTag(ctx context.Context, req *pb.UpdateTagRequest) (*pb.AccountResponse, error) {
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdateTag(ctx, id, models.Operation(req.GetOperation()), req.GetTitle())
	})
}

func (s *GRPCServer) UpdateZone(ctx context.Context, req *pb.UpdateZoneRequest) (*pb.AccountResponse, error) {
	return s.account(ctx, func(ctx context.Context, id int64) (*models.Account, error) {
		return s.accounts.UpdateZone(ctx, id, models.Operation(req.GetOperation()), req.GetZone())
	})
}

func (s *GRPCServer) GetTags(ctx context.Context, _ *pb.GetTagsRequest) (*pb.TagsResponse, error) {
	id, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.accounts.GetTags(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TagsResponse{Tags: tags}, nil
}

func (s *GRPCServer) ListAllTags(ctx context.Context, _ *pb.ListAllTagsRequest) (*pb.TagsResponse, error) {
	tags, err := s.accounts.ListAllTags(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TagsResponse{Tags: tags}, nil
}

func (s *GRPCServer) GetZones(ctx context.Context, _ *pb.GetZonesRequest) (*pb.ZonesResponse, error) {
	id, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	zones, err := s.accounts.GetZones(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ZonesResponse{Zones: zones}, nil
}

func (s *GRPCServer) ListAllZones(ctx context.Context, _ *pb.ListAllZonesRequest) (*pb.ZonesResponse, error) {
	zones, err := s.accounts.ListAllZones(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ZonesResponse{Zones: zones}, nil
}

// account runs an operation on the acting account and renders the snapshot.
func (s *GRPCServer) account(ctx context.Context, op func(ctx context.Context, id int64) (*models.Account, error)) (*pb.AccountResponse, error) {
	id, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	account, err := op(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AccountResponse{Account: accountView(account)}, nil
}
