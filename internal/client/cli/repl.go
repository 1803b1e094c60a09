package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Show(ctx context.Context) error
	Profile(ctx context.Context) error
	Password(ctx context.Context) error
	Nickname(ctx context.Context, args []string) error
	Notify(ctx context.Context) error
	Tags(ctx context.Context) error
	AllTags(ctx context.Context) error
	Tag(ctx context.Context, args []string) error
	Zones(ctx context.Context) error
	AllZones(ctx context.Context) error
	Zone(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: show, profile, password, nickname <name>, notify, " +
		"tags, alltags, tag add|remove <title>, zones, allzones, zone add|remove <city(local)/province>, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The first token is the command; the rest are its arguments. Errors
// returned by commands are printed and the loop goes on. The loop exits on
// EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gs%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errQuit) {
				printlnFn("Bye!")
				return
			}
			printlnFn(describeError(err))
		}
	}
}

var errQuit = errors.New("quit")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "exit", "quit":
		return errQuit
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		printlnFn("Please register or login first")
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "show":
		return a.Show(ctx)
	case "profile":
		return a.Profile(ctx)
	case "password":
		return a.Password(ctx)
	case "nickname":
		return a.Nickname(ctx, args)
	case "notify":
		return a.Notify(ctx)
	case "tags":
		return a.Tags(ctx)
	case "alltags":
		return a.AllTags(ctx)
	case "tag":
		return a.Tag(ctx, args)
	case "zones":
		return a.Zones(ctx)
	case "allzones":
		return a.AllZones(ctx)
	case "zone":
		return a.Zone(ctx, args)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
