package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophsettings/internal/client/client"
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
)

func printAccount(w io.Writer, a *pb.Account) {
	if a == nil {
		return
	}
	n := a.GetNotifications()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Email", a.GetEmail()},
		{"Nickname", a.GetNickname()},
		{"Bio", a.GetBio()},
		{"URL", a.GetUrl()},
		{"Occupation", a.GetOccupation()},
		{"Location", a.GetLocation()},
		{"Profile image", a.GetProfileImage()},
		{"Study created", channels(n.GetStudyCreatedByEmail(), n.GetStudyCreatedByWeb())},
		{"Enrollment result", channels(n.GetStudyEnrollmentResultByEmail(), n.GetStudyEnrollmentResultByWeb())},
		{"Study updated", channels(n.GetStudyUpdatedByEmail(), n.GetStudyUpdatedByWeb())},
		{"Tags", strings.Join(a.GetTags(), ", ")},
		{"Zones", strings.Join(a.GetZones(), ", ")},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	_ = tw.Flush()
}

func channels(email, web bool) string {
	var on []string
	if email {
		on = append(on, "email")
	}
	if web {
		on = append(on, "web")
	}
	if len(on) == 0 {
		return "off"
	}
	return strings.Join(on, "+")
}

// describeError renders err for the user, listing field violations carried
// in the status details.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Not authorized: please login again"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	}

	var se interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &se) {
		return "Error: " + err.Error()
	}
	st := se.GRPCStatus()

	var b strings.Builder
	b.WriteString("Error: " + st.Message())
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			fmt.Fprintf(&b, "\n  %s: %s", v.GetField(), v.GetDescription())
		}
	}
	return b.String()
}
