// Package services contains application services for the settings CLI.
// AuthService signs up and logs in against the server and keeps the
// resulting session in the local metadata store so it survives restarts.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/client/repositories/metadata"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

const (
	keyAccessToken = "access_token"
	keyNickname    = "nickname"
)

// Session is the authentication surface of the remote client. Passwords
// are passed through without copying so the caller can wipe them.
type Session interface {
	SignUp(ctx context.Context, email, nickname string, password []byte) (*pb.Account, error)
	Login(ctx context.Context, email string, password []byte) (*pb.Account, error)
	AccessToken() string
	SetAccessToken(token string)
	Close() error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server and keep its session.
//   - Login: authenticate and keep the session.
//   - Restore: reload a kept session; ok is false when there is none.
//   - Logout: forget the session locally.
//   - Close: release the remote client.
type AuthService interface {
	Register(ctx context.Context, email, nickname string, password []byte) (*pb.Account, error)
	Login(ctx context.Context, email string, password []byte) (*pb.Account, error)
	Restore(ctx context.Context) (nickname string, ok bool, err error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	session  Session
	metadata metadata.Repository
}

func NewAuthService(session Session, repo metadata.Repository) AuthService {
	return &authService{session: session, metadata: repo}
}

func (a *authService) Register(ctx context.Context, email, nickname string, password []byte) (*pb.Account, error) {
	account, err := a.session.SignUp(ctx, email, nickname, password)
	if err != nil {
		return nil, err
	}
	return account, a.save(ctx, account.GetNickname())
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*pb.Account, error) {
	account, err := a.session.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return account, a.save(ctx, account.GetNickname())
}

func (a *authService) save(ctx context.Context, nickname string) error {
	if err := a.metadata.Set(ctx, keyAccessToken, []byte(a.session.AccessToken())); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	if err := a.metadata.Set(ctx, keyNickname, []byte(nickname)); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) (string, bool, error) {
	token, err := a.metadata.Get(ctx, keyAccessToken)
	if err != nil {
		return "", false, err
	}
	if len(token) == 0 {
		return "", false, nil
	}

	nickname, err := a.metadata.Get(ctx, keyNickname)
	if err != nil {
		return "", false, err
	}

	a.session.SetAccessToken(string(token))
	return string(nickname), true, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.session.SetAccessToken("")
	return a.metadata.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.session.Close()
}
