package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, nickname and password and creates the account.
// On success the new session is kept and the user is logged in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Enter nickname", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.call(ctx)
	defer cancel()

	account, err := a.authService.Register(ctx, email, nickname, password)
	if err != nil {
		return err
	}

	a.setSession(account.GetNickname())
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and authenticates. The password byte slice
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.call(ctx)
	defer cancel()

	account, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.setSession(account.GetNickname())
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the kept session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setSession("")
	return nil
}
