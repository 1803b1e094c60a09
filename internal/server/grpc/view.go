package grpc

import (
	pb "github.com/dmitrijs2005/gophsettings/internal/proto"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
	"github.com/dmitrijs2005/gophsettings/internal/server/zonekey"
)

// accountView renders the client view of a; the password hash is left out.
func accountView(a *models.Account) *pb.Account {
	return &pb.Account{
		Id:           a.ID,
		Email:        a.Email,
		Nickname:     a.Nickname,
		Bio:          a.Bio,
		Url:          a.URL,
		Occupation:   a.Occupation,
		Location:     a.Location,
		ProfileImage: a.ProfileImage,
		Notifications: &pb.Notifications{
			StudyCreatedByEmail:          a.StudyCreatedByEmail,
			StudyCreatedByWeb:            a.StudyCreatedByWeb,
			StudyEnrollmentResultByEmail: a.StudyEnrollmentResultByEmail,
			StudyEnrollmentResultByWeb:   a.StudyEnrollmentResultByWeb,
			StudyUpdatedByEmail:          a.StudyUpdatedByEmail,
			StudyUpdatedByWeb:            a.StudyUpdatedByWeb,
		},
		Tags:  a.TagTitles(),
		Zones: zonekey.FormatAll(a.Zones),
	}
}

// notifications converts n; a missing message turns every flag off.
func notifications(n *pb.Notifications) models.Notifications {
	return models.Notifications{
		StudyCreatedByEmail:          n.GetStudyCreatedByEmail(),
		StudyCreatedByWeb:            n.GetStudyCreatedByWeb(),
		StudyEnrollmentResultByEmail: n.GetStudyEnrollmentResultByEmail(),
		StudyEnrollmentResultByWeb:   n.GetStudyEnrollmentResultByWeb(),
		StudyUpdatedByEmail:          n.GetStudyUpdatedByEmail(),
		StudyUpdatedByWeb:            n.GetStudyUpdatedByWeb(),
	}
}
