package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/logging"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
	"github.com/dmitrijs2005/gophsettings/internal/server/auth"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

func newTestServer(secret string, as AccountService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, as, secret)
}

func asAccount(id int64) context.Context {
	return context.WithValue(context.Background(), AccountIDKey, id)
}

func TestSignUp_IssuesTokenForNewAccount(t *testing.T) {
	fa := newFakeAccounts()
	s := newTestServer("secret", fa)

	resp, err := s.SignUp(context.Background(), &pb.SignUpRequest{Email: "global@gmail.com", Nickname: "global", Password: []byte("12345678")})
	require.NoError(t, err)
	assert.Equal(t, "global", resp.Account.Nickname)

	id, err := auth.GetAccountIDFromToken(resp.AccessToken, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, resp.GetAccount().GetId(), id)
}

func TestLogin(t *testing.T) {
	fa := newFakeAccounts()
	fa.accounts[3] = &models.Account{ID: 3, Email: "a@b.c", Nickname: "alpha"}
	s := newTestServer("secret", fa)

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: []byte("12345678")})
	require.NoError(t, err)
	id, err := auth.GetAccountIDFromToken(resp.AccessToken, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	_, err = s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: []byte("nope")})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestHandlers_UseActingAccount(t *testing.T) {
	fa := newFakeAccounts()
	fa.accounts[7] = &models.Account{ID: 7, Email: "a@b.c", Nickname: "alpha"}
	s := newTestServer("secret", fa)
	ctx := asAccount(7)

	resp, err := s.UpdateNickname(ctx, &pb.UpdateNicknameRequest{Nickname: "bravo"})
	require.NoError(t, err)
	assert.Equal(t, "bravo", resp.Account.Nickname)
	assert.Equal(t, int64(7), fa.lastID)

	resp, err = s.UpdateProfile(ctx, &pb.UpdateProfileRequest{Bio: "hi", Location: "Seoul"})
	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Account.Bio)
	assert.Equal(t, "Seoul", resp.Account.Location)

	resp, err = s.UpdateNotifications(ctx, &pb.UpdateNotificationsRequest{Notifications: &pb.Notifications{StudyUpdatedByWeb: true}})
	require.NoError(t, err)
	assert.True(t, resp.Account.Notifications.StudyUpdatedByWeb)
	assert.False(t, resp.Account.Notifications.StudyCreatedByEmail)

	resp, err = s.UpdateTag(ctx, &pb.UpdateTagRequest{Operation: "add", Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, resp.Account.Tags)
	assert.Equal(t, models.OperationAdd, fa.lastOp)

	_, err = s.UpdateZone(ctx, &pb.UpdateZoneRequest{Operation: "remove", Zone: "Andong(안동시)/North Gyeongsang"})
	require.NoError(t, err)
	assert.Equal(t, models.OperationRemove, fa.lastOp)
	assert.Equal(t, "Andong(안동시)/North Gyeongsang", fa.lastKV)

	_, err = s.UpdatePassword(ctx, &pb.UpdatePasswordRequest{NewPassword: []byte("12345678"), NewPasswordConfirm: []byte("12345678")})
	require.NoError(t, err)

	tags, err := s.GetTags(ctx, &pb.GetTagsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, tags.Tags)

	zones, err := s.GetZones(ctx, &pb.GetZonesRequest{})
	require.NoError(t, err)
	assert.Len(t, zones.Zones, 1)

	all, err := s.ListAllTags(ctx, &pb.ListAllTagsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Spring"}, all.Tags)

	allZones, err := s.ListAllZones(ctx, &pb.ListAllZonesRequest{})
	require.NoError(t, err)
	assert.Len(t, allZones.Zones, 1)
}

func TestHandlers_RequireAccount(t *testing.T) {
	s := newTestServer("secret", newFakeAccounts())

	_, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.GetTags(context.Background(), &pb.GetTagsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAccountView_HidesPasswordHash(t *testing.T) {
	fa := newFakeAccounts()
	fa.accounts[1] = &models.Account{ID: 1, Nickname: "alpha", PasswordHash: "secret-hash"}
	s := newTestServer("secret", fa)

	resp, err := s.GetAccount(asAccount(1), &pb.GetAccountRequest{})
	require.NoError(t, err)
	assert.NotContains(t, resp.Account.String(), "secret-hash")
}

func TestToStatus(t *testing.T) {
	s := newTestServer("secret", nil)
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", common.NewValidationError([]common.Violation{{Field: "bio", Reason: "must be at most 35 characters"}}), codes.InvalidArgument},
		{"duplicate", fmt.Errorf("error updating nickname: %w", &common.DuplicateValueError{Field: "nickname"}), codes.AlreadyExists},
		{"not found", &common.NotFoundError{Entity: "zone", Key: "A(B)/C"}, codes.NotFound},
		{"malformed zone key", fmt.Errorf("%w: no '('", common.ErrMalformedZoneKey), codes.InvalidArgument},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated},
		{"canceled", context.Canceled, codes.Canceled},
		{"storage fault", errors.New("db error: connection refused"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(s.toStatus(ctx, tt.err)))
		})
	}
}

func TestToStatus_InternalHidesCause(t *testing.T) {
	s := newTestServer("secret", nil)

	err := s.toStatus(context.Background(), errors.New("db error: password authentication failed"))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestToStatus_FieldViolationDetails(t *testing.T) {
	s := newTestServer("secret", nil)

	err := s.toStatus(context.Background(), common.NewValidationError([]common.Violation{
		{Field: "newPassword", Reason: "must be at least 8 characters"},
		{Field: "newPasswordConfirm", Reason: "does not match the new password"},
	}))

	st := status.Convert(err)
	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.GetFieldViolations(), 2)
	assert.Equal(t, "newPassword", br.GetFieldViolations()[0].GetField())
	assert.Equal(t, "does not match the new password", br.GetFieldViolations()[1].GetDescription())
}
