package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/gophsettings/internal/client/client"
	"github.com/dmitrijs2005/gophsettings/internal/client/config"
	"github.com/dmitrijs2005/gophsettings/internal/client/services"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

// SettingsAPI is the part of the remote client the settings commands use.
type SettingsAPI interface {
	Account(ctx context.Context) (*pb.Account, error)
	UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Account, error)
	UpdatePassword(ctx context.Context, password, confirm []byte) (*pb.Account, error)
	UpdateNickname(ctx context.Context, nickname string) (*pb.Account, error)
	UpdateNotifications(ctx context.Context, n *pb.Notifications) (*pb.Account, error)
	UpdateTag(ctx context.Context, op, title string) (*pb.Account, error)
	UpdateZone(ctx context.Context, op, zone string) (*pb.Account, error)
	Tags(ctx context.Context) ([]string, error)
	AllTags(ctx context.Context) ([]string, error)
	Zones(ctx context.Context) ([]string, error)
	AllZones(ctx context.Context) ([]string, error)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	api         SettingsAPI
	db          io.Closer
	nickname    string
	loggedIn    bool
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, repos.Metadata),
		api:         apiClient,
		db:          repos.DB,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to gophsettings CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		log.Printf("error closing client: %v", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) restoreSession(ctx context.Context) {
	nickname, ok, err := a.authService.Restore(ctx)
	if err != nil {
		log.Printf("error restoring session: %v", err)
		return
	}
	if ok {
		a.setSession(nickname)
	}
}

func (a *App) setSession(nickname string) {
	a.nickname = nickname
	a.loggedIn = nickname != ""
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if a.nickname == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.nickname)
}

// call bounds one request to the server by the configured timeout.
func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
