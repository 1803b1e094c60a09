// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered member's profile, credential and membership record.
type Account struct {
	ID           int64
	Email        string
	Nickname     string
	PasswordHash string

	Profile
	Notifications

	Tags  []Tag
	Zones []Zone

	CreatedAt time.Time
}

// Profile holds the free-text profile fields of an account.
type Profile struct {
	Bio          string
	URL          string
	Occupation   string
	Location     string
	ProfileImage string
}

// Notifications holds the six notification preference flags. They are
// always written together.
type Notifications struct {
	StudyCreatedByEmail          bool
	StudyCreatedByWeb            bool
	StudyEnrollmentResultByEmail bool
	StudyEnrollmentResultByWeb   bool
	StudyUpdatedByEmail          bool
	StudyUpdatedByWeb            bool
}

// PasswordForm is a proposed password change.
type PasswordForm struct {
	NewPassword        string
	NewPasswordConfirm string
}

// SignUpForm is the input of account creation.
type SignUpForm struct {
	Email    string
	Nickname string
	Password string
}

// TagTitles returns the titles of the account's tags in stored order.
func (a *Account) TagTitles() []string {
	titles := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		titles = append(titles, t.Title)
	}
	return titles
}
