// Package validators holds the admission rules for account changes. Field
// rules are pure functions returning the ordered list of violations; an
// empty list means the value is admissible. Uniqueness rules consult the
// account store.
package validators

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

const (
	MaxBioLength         = 35
	MaxProfileTextLength = 50

	MinPasswordLength = 8
	MaxPasswordLength = 50
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// Field names as reported in violations.
const (
	FieldBio                = "bio"
	FieldURL                = "url"
	FieldOccupation         = "occupation"
	FieldLocation           = "location"
	FieldNewPassword        = "newPassword"
	FieldNewPasswordConfirm = "newPasswordConfirm"
	FieldNickname           = "nickname"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldTitle              = "title"
)

var validate = validator.New()

var (
	bioRule         = fmt.Sprintf("max=%d", MaxBioLength)
	profileTextRule = fmt.Sprintf("max=%d", MaxProfileTextLength)
	passwordRule    = fmt.Sprintf("min=%d,max=%d", MinPasswordLength, MaxPasswordLength)
)

// check runs a single validator tag against value and appends a violation
// for field when it fails. Lengths are counted in characters.
func check(vs []common.Violation, field, value, rule string) []common.Violation {
	err := validate.Var(value, rule)
	if err == nil {
		return vs
	}
	return append(vs, common.Violation{Field: field, Reason: reason(err)})
}

func reason(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err.Error()
	}
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

// ValidateProfile checks the length bounds of the four text fields.
// ProfileImage is unbounded.
func ValidateProfile(p models.Profile) []common.Violation {
	var vs []common.Violation
	vs = check(vs, FieldBio, p.Bio, bioRule)
	vs = check(vs, FieldURL, p.URL, profileTextRule)
	vs = check(vs, FieldOccupation, p.Occupation, profileTextRule)
	vs = check(vs, FieldLocation, p.Location, profileTextRule)
	return vs
}

// ValidatePasswordChange checks the new password length and that the
// confirmation matches it exactly. A mismatch is reported on the
// confirmation field.
func ValidatePasswordChange(f models.PasswordForm) []common.Violation {
	vs := checkPassword(nil, FieldNewPassword, f.NewPassword)
	if f.NewPassword != f.NewPasswordConfirm {
		vs = append(vs, common.Violation{Field: FieldNewPasswordConfirm, Reason: "does not match the new password"})
	}
	return vs
}

func checkPassword(vs []common.Violation, field, password string) []common.Violation {
	before := len(vs)
	vs = check(vs, field, password, passwordRule)
	if len(vs) == before && len(password) > MaxPasswordBytes {
		vs = append(vs, common.Violation{Field: field, Reason: fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes)})
	}
	return vs
}

// NicknamePolicy is the configured allow-list for nicknames.
type NicknamePolicy struct {
	pattern *regexp.Regexp
}

// NewNicknamePolicy compiles pattern. The pattern should be anchored.
func NewNicknamePolicy(pattern string) (*NicknamePolicy, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid nickname pattern: %w", err)
	}
	return &NicknamePolicy{pattern: re}, nil
}

// Validate reports a violation when nickname is outside the allow-list.
func (p *NicknamePolicy) Validate(nickname string) []common.Violation {
	if p.pattern.MatchString(nickname) {
		return nil
	}
	return []common.Violation{{Field: FieldNickname, Reason: "contains characters that are not allowed"}}
}

// ValidateSignUp checks a new account's email format, nickname policy and
// password length.
func ValidateSignUp(f models.SignUpForm, nicknames *NicknamePolicy) []common.Violation {
	var vs []common.Violation
	vs = check(vs, FieldEmail, f.Email, "required,email")
	vs = append(vs, nicknames.Validate(f.Nickname)...)
	vs = checkPassword(vs, FieldPassword, f.Password)
	return vs
}

// ValidateTagTitle rejects an empty tag title. Titles are otherwise taken
// verbatim, case included.
func ValidateTagTitle(title string) []common.Violation {
	return check(nil, FieldTitle, title, "required")
}
