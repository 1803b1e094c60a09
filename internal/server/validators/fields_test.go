package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/config"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

func fields(vs []common.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestValidateProfile_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		field string
		max   int
		set   func(p *models.Profile, v string)
	}{
		{"bio", FieldBio, MaxBioLength, func(p *models.Profile, v string) { p.Bio = v }},
		{"url", FieldURL, MaxProfileTextLength, func(p *models.Profile, v string) { p.URL = v }},
		{"occupation", FieldOccupation, MaxProfileTextLength, func(p *models.Profile, v string) { p.Occupation = v }},
		{"location", FieldLocation, MaxProfileTextLength, func(p *models.Profile, v string) { p.Location = v }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ok models.Profile
			tt.set(&ok, strings.Repeat("a", tt.max))
			assert.Empty(t, ValidateProfile(ok), "value at the bound must pass")

			var tooLong models.Profile
			tt.set(&tooLong, strings.Repeat("a", tt.max+1))
			vs := ValidateProfile(tooLong)
			require.Len(t, vs, 1)
			assert.Equal(t, tt.field, vs[0].Field)
		})
	}
}

func TestValidateProfile_CountsCharactersNotBytes(t *testing.T) {
	// 35 Hangul syllables are 105 bytes.
	p := models.Profile{Bio: strings.Repeat("가", MaxBioLength)}
	assert.Empty(t, ValidateProfile(p))

	p.Bio = "자기소개를 35자가 넘게 길게 입력한 경우에는 오류가 발생하도록 설정해 놓았음"
	vs := ValidateProfile(p)
	require.Len(t, vs, 1)
	assert.Equal(t, "must be at most 35 characters", vs[0].Reason)
}

func TestValidateProfile_EmptyAndUnboundedImage(t *testing.T) {
	p := models.Profile{ProfileImage: strings.Repeat("x", 10_000)}
	assert.Empty(t, ValidateProfile(p))
}

func TestValidateProfile_OrderedViolations(t *testing.T) {
	long := strings.Repeat("z", 60)
	vs := ValidateProfile(models.Profile{Bio: long, URL: long, Occupation: long, Location: long})
	assert.Equal(t, []string{FieldBio, FieldURL, FieldOccupation, FieldLocation}, fields(vs))
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name string
		form models.PasswordForm
		want []string
	}{
		{"ok", models.PasswordForm{NewPassword: "12345678", NewPasswordConfirm: "12345678"}, []string{}},
		{"mismatch goes to confirmation", models.PasswordForm{NewPassword: "12345678", NewPasswordConfirm: "12378456"}, []string{FieldNewPasswordConfirm}},
		{"too short", models.PasswordForm{NewPassword: "1234567", NewPasswordConfirm: "1234567"}, []string{FieldNewPassword}},
		{"too long", models.PasswordForm{NewPassword: strings.Repeat("p", 51), NewPasswordConfirm: strings.Repeat("p", 51)}, []string{FieldNewPassword}},
		{"short and mismatched", models.PasswordForm{NewPassword: "short", NewPasswordConfirm: "other"}, []string{FieldNewPassword, FieldNewPasswordConfirm}},
		{"case differs", models.PasswordForm{NewPassword: "Password1", NewPasswordConfirm: "password1"}, []string{FieldNewPasswordConfirm}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(ValidatePasswordChange(tt.form)))
		})
	}
}

func TestValidatePasswordChange_ByteLimit(t *testing.T) {
	// 30 characters but 90 bytes.
	pw := strings.Repeat("비", 30)
	vs := ValidatePasswordChange(models.PasswordForm{NewPassword: pw, NewPasswordConfirm: pw})
	require.Len(t, vs, 1)
	assert.Equal(t, FieldNewPassword, vs[0].Field)
	assert.Equal(t, "must be at most 72 bytes", vs[0].Reason)
}

func TestNicknamePolicy_Default(t *testing.T) {
	p, err := NewNicknamePolicy(config.DefaultNicknamePattern)
	require.NoError(t, err)

	for _, ok := range []string{"global", "global2", "닉네임", "a_b-c", "abc"} {
		assert.Empty(t, p.Validate(ok), ok)
	}
	for _, bad := range []string{"(^$&@*^$&", "ab", "has space", "dot.ted", strings.Repeat("n", 21), ""} {
		vs := p.Validate(bad)
		require.Len(t, vs, 1, bad)
		assert.Equal(t, FieldNickname, vs[0].Field)
	}
}

func TestNewNicknamePolicy_InvalidPattern(t *testing.T) {
	_, err := NewNicknamePolicy("[")
	assert.Error(t, err)
}

func TestValidateSignUp(t *testing.T) {
	p, err := NewNicknamePolicy(config.DefaultNicknamePattern)
	require.NoError(t, err)

	assert.Empty(t, ValidateSignUp(models.SignUpForm{Email: "global@gmail.com", Nickname: "global", Password: "12345678"}, p))

	vs := ValidateSignUp(models.SignUpForm{Email: "not-an-email", Nickname: "!!", Password: "1"}, p)
	assert.Equal(t, []string{FieldEmail, FieldNickname, FieldPassword}, fields(vs))
	assert.Equal(t, "must be a valid email", vs[0].Reason)

	vs = ValidateSignUp(models.SignUpForm{Nickname: "global", Password: "12345678"}, p)
	require.Len(t, vs, 1)
	assert.Equal(t, "is required", vs[0].Reason)
}

func TestValidateTagTitle(t *testing.T) {
	assert.Empty(t, ValidateTagTitle("Spring"))
	assert.Empty(t, ValidateTagTitle(" spaced "))

	vs := ValidateTagTitle("")
	require.Len(t, vs, 1)
	assert.Equal(t, common.Violation{Field: FieldTitle, Reason: "is required"}, vs[0])
}
