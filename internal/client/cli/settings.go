package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

func (a *App) Show(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	account, err := a.api.Account(ctx)
	if err != nil {
		return err
	}
	printAccount(a.out, account)
	return nil
}

// Profile asks for every profile field; an empty answer keeps the current
// value and "-" clears it.
func (a *App) Profile(ctx context.Context) error {
	current, err := a.fetchAccount(ctx)
	if err != nil {
		return err
	}

	req := &pb.UpdateProfileRequest{
		Bio:          current.GetBio(),
		Url:          current.GetUrl(),
		Occupation:   current.GetOccupation(),
		Location:     current.GetLocation(),
		ProfileImage: current.GetProfileImage(),
	}
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Bio", &req.Bio},
		{"URL", &req.Url},
		{"Occupation", &req.Occupation},
		{"Location", &req.Location},
		{"Profile image", &req.ProfileImage},
	}
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.value), a.out)
		if err != nil {
			return err
		}
		switch answer {
		case "":
		case "-":
			*f.value = ""
		default:
			*f.value = answer
		}
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.printed(a.api.UpdateProfile(ctx, req))
}

func (a *App) Password(ctx context.Context) error {
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprint(a.out, "Repeat. ")
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	ctx, cancel := a.call(ctx)
	defer cancel()

	if _, err := a.api.UpdatePassword(ctx, password, confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) Nickname(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: nickname <name>")
		return nil
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	account, err := a.api.UpdateNickname(ctx, args[0])
	if err != nil {
		return err
	}
	a.setSession(account.GetNickname())
	printAccount(a.out, account)
	return nil
}

// Notify asks for each of the six notification flags, defaulting to the
// current value.
func (a *App) Notify(ctx context.Context) error {
	current, err := a.fetchAccount(ctx)
	if err != nil {
		return err
	}

	cur := current.GetNotifications()
	n := &pb.Notifications{
		StudyCreatedByEmail:          cur.GetStudyCreatedByEmail(),
		StudyCreatedByWeb:            cur.GetStudyCreatedByWeb(),
		StudyEnrollmentResultByEmail: cur.GetStudyEnrollmentResultByEmail(),
		StudyEnrollmentResultByWeb:   cur.GetStudyEnrollmentResultByWeb(),
		StudyUpdatedByEmail:          cur.GetStudyUpdatedByEmail(),
		StudyUpdatedByWeb:            cur.GetStudyUpdatedByWeb(),
	}
	flags := []struct {
		prompt string
		value  *bool
	}{
		{"Study created: email", &n.StudyCreatedByEmail},
		{"Study created: web", &n.StudyCreatedByWeb},
		{"Enrollment result: email", &n.StudyEnrollmentResultByEmail},
		{"Enrollment result: web", &n.StudyEnrollmentResultByWeb},
		{"Study updated: email", &n.StudyUpdatedByEmail},
		{"Study updated: web", &n.StudyUpdatedByWeb},
	}
	for _, f := range flags {
		v, err := GetYesNo(a.reader, f.prompt, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.printed(a.api.UpdateNotifications(ctx, n))
}

func (a *App) Tags(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.listed(a.api.Tags(ctx))
}

func (a *App) AllTags(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.listed(a.api.AllTags(ctx))
}

// Tag handles "tag add <title>" and "tag remove <title>". The title is the
// rest of the line.
func (a *App) Tag(ctx context.Context, args []string) error {
	op, title, ok := operationArgs(args)
	if !ok {
		printlnFn("Usage: tag add|remove <title>")
		return nil
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.printed(a.api.UpdateTag(ctx, op, title))
}

func (a *App) Zones(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.listed(a.api.Zones(ctx))
}

func (a *App) AllZones(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.listed(a.api.AllZones(ctx))
}

// Zone handles "zone add <key>" and "zone remove <key>" where key looks like
// "Andong(안동시)/North Gyeongsang".
func (a *App) Zone(ctx context.Context, args []string) error {
	op, key, ok := operationArgs(args)
	if !ok {
		printlnFn("Usage: zone add|remove <city(local name)/province>")
		return nil
	}

	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.printed(a.api.UpdateZone(ctx, op, key))
}

func operationArgs(args []string) (op, value string, ok bool) {
	if len(args) < 2 {
		return "", "", false
	}
	return args[0], strings.Join(args[1:], " "), true
}

func (a *App) fetchAccount(ctx context.Context) (*pb.Account, error) {
	ctx, cancel := a.call(ctx)
	defer cancel()
	return a.api.Account(ctx)
}

func (a *App) printed(account *pb.Account, err error) error {
	if err != nil {
		return err
	}
	printAccount(a.out, account)
	return nil
}

func (a *App) listed(items []string, err error) error {
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "(none)")
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(a.out, " -", item)
	}
	return nil
}
