package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/dmitrijs2005/gophsettings/internal/client/client"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

type fakeAPI struct {
	account *pb.Account
	err     error

	profile  *pb.UpdateProfileRequest
	password [2]string
	buffers  [][]byte
	nickname string
	notify   *pb.Notifications
	op, arg  string
	list     []string
}

func (f *fakeAPI) result() (*pb.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.account, nil
}

func (f *fakeAPI) Account(context.Context) (*pb.Account, error) { return f.result() }
func (f *fakeAPI) UpdateProfile(_ context.Context, req *pb.UpdateProfileRequest) (*pb.Account, error) {
	f.profile = req
	return f.result()
}
func (f *fakeAPI) UpdatePassword(_ context.Context, password, confirm []byte) (*pb.Account, error) {
	f.password = [2]string{string(password), string(confirm)}
	f.buffers = [][]byte{password, confirm}
	return f.result()
}
func (f *fakeAPI) UpdateNickname(_ context.Context, nickname string) (*pb.Account, error) {
	f.nickname = nickname
	if f.err != nil {
		return nil, f.err
	}
	acc := proto.Clone(f.account).(*pb.Account)
	acc.Nickname = nickname
	return acc, nil
}
func (f *fakeAPI) UpdateNotifications(_ context.Context, n *pb.Notifications) (*pb.Account, error) {
	f.notify = n
	return f.result()
}
func (f *fakeAPI) UpdateTag(_ context.Context, op, title string) (*pb.Account, error) {
	f.op, f.arg = op, title
	return f.result()
}
func (f *fakeAPI) UpdateZone(_ context.Context, op, zone string) (*pb.Account, error) {
	f.op, f.arg = op, zone
	return f.result()
}
func (f *fakeAPI) Tags(context.Context) ([]string, error)     { return f.list, f.err }
func (f *fakeAPI) AllTags(context.Context) ([]string, error)  { return f.list, f.err }
func (f *fakeAPI) Zones(context.Context) ([]string, error)    { return f.list, f.err }
func (f *fakeAPI) AllZones(context.Context) ([]string, error) { return f.list, f.err }

func assertProtoEqual(t *testing.T, want, got proto.Message) {
	t.Helper()
	assert.True(t, proto.Equal(want, got), "want %v, got %v", want, got)
}

func newSettingsApp(api *fakeAPI, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := &App{api: api, out: &out, reader: rdr(input)}
	a.setSession("alpha")
	return a, &out
}

func sampleAccount() *pb.Account {
	return &pb.Account{
		Id:       1,
		Email:    "a@b.c",
		Nickname: "alpha",
		Bio:      "old bio",
		Url:      "https://old",
		Notifications: &pb.Notifications{
			StudyCreatedByEmail: true,
		},
		Tags:  []string{"go"},
		Zones: []string{"Andong(안동시)/North Gyeongsang"},
	}
}

func TestShow_PrintsAccount(t *testing.T) {
	a, out := newSettingsApp(&fakeAPI{account: sampleAccount()}, "")

	require.NoError(t, a.Show(context.Background()))
	assert.Contains(t, out.String(), "alpha")
	assert.Contains(t, out.String(), "Andong(안동시)/North Gyeongsang")
	assert.Contains(t, out.String(), "email")
}

func TestProfile_KeepsClearsAndReplaces(t *testing.T) {
	api := &fakeAPI{account: sampleAccount()}
	// bio kept, url cleared, occupation set, location and image kept
	a, _ := newSettingsApp(api, "\n-\nengineer\n\n\n")

	require.NoError(t, a.Profile(context.Background()))
	assertProtoEqual(t, &pb.UpdateProfileRequest{
		Bio:        "old bio",
		Url:        "",
		Occupation: "engineer",
	}, api.profile)
}

func TestPassword_SendsBothEntries(t *testing.T) {
	api := &fakeAPI{account: sampleAccount()}
	a, out := newSettingsApp(api, "")
	stubInputs(t, nil, []byte("12345678"))

	require.NoError(t, a.Password(context.Background()))
	assert.Equal(t, [2]string{"12345678", "12345678"}, api.password)
	assert.Contains(t, out.String(), "Password changed")
}

func TestPassword_WipesBuffersSentToServer(t *testing.T) {
	api := &fakeAPI{account: sampleAccount()}
	a, _ := newSettingsApp(api, "")
	stubInputs(t, nil, []byte("12345678"))

	require.NoError(t, a.Password(context.Background()))
	require.Len(t, api.buffers, 2)
	for _, b := range api.buffers {
		assert.Equal(t, make([]byte, 8), b)
	}
}

func TestNickname_UpdatesStatus(t *testing.T) {
	captureOutput(t)
	api := &fakeAPI{account: sampleAccount()}
	a, _ := newSettingsApp(api, "")

	require.NoError(t, a.Nickname(context.Background(), []string{"beta"}))
	assert.Equal(t, "beta", api.nickname)
	assert.Equal(t, "(beta)", a.getStatus())

	require.NoError(t, a.Nickname(context.Background(), nil))
	assert.Equal(t, "beta", api.nickname)
}

func TestNotify_DefaultsToCurrentFlags(t *testing.T) {
	api := &fakeAPI{account: sampleAccount()}
	a, _ := newSettingsApp(api, "\ny\nn\n\n\ny\n")

	require.NoError(t, a.Notify(context.Background()))
	assertProtoEqual(t, &pb.Notifications{
		StudyCreatedByEmail: true,
		StudyCreatedByWeb:   true,
		StudyUpdatedByWeb:   true,
	}, api.notify)
}

func TestTagAndZone_JoinRestOfLine(t *testing.T) {
	captureOutput(t)
	api := &fakeAPI{account: sampleAccount()}
	a, _ := newSettingsApp(api, "")
	ctx := context.Background()

	require.NoError(t, a.Tag(ctx, []string{"add", "machine", "learning"}))
	assert.Equal(t, "add", api.op)
	assert.Equal(t, "machine learning", api.arg)

	require.NoError(t, a.Zone(ctx, []string{"remove", "Andong(안동시)/North", "Gyeongsang"}))
	assert.Equal(t, "remove", api.op)
	assert.Equal(t, "Andong(안동시)/North Gyeongsang", api.arg)

	api.op = ""
	require.NoError(t, a.Tag(ctx, []string{"add"}))
	assert.Empty(t, api.op)
}

func TestListings(t *testing.T) {
	api := &fakeAPI{}
	a, out := newSettingsApp(api, "")
	ctx := context.Background()

	require.NoError(t, a.AllTags(ctx))
	assert.Contains(t, out.String(), "(none)")

	api.list = []string{"go", "rust"}
	out.Reset()
	require.NoError(t, a.AllZones(ctx))
	assert.Equal(t, " - go\n - rust\n", out.String())

	require.NoError(t, a.Tags(ctx))
	require.NoError(t, a.Zones(ctx))
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "Not authorized: please login again", describeError(client.ErrUnauthorized))
	assert.Equal(t, "Server unavailable, try again later", describeError(client.ErrUnavailable))

	st, err := status.New(codes.InvalidArgument, "validation failed").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "bio", Description: "must be at most 35 characters"},
		},
	})
	require.NoError(t, err)

	got := describeError(st.Err())
	assert.Equal(t, "Error: validation failed\n  bio: must be at most 35 characters", got)
}
