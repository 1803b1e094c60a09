package validators

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

// AccountLookup is the part of the account store the uniqueness rules need.
type AccountLookup interface {
	GetByNickname(ctx context.Context, nickname string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// CheckNicknameAvailable fails with a DuplicateValueError when an account
// other than actingID holds nickname. The unique index remains the final
// arbiter; this check only gives an early answer.
func CheckNicknameAvailable(ctx context.Context, accounts AccountLookup, actingID int64, nickname string) error {
	holder, err := accounts.GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}
	if holder.ID == actingID {
		return nil
	}
	return &common.DuplicateValueError{Field: FieldNickname}
}

// CheckEmailAvailable fails with a DuplicateValueError when any account
// holds email. Only used at sign-up; email is immutable afterwards.
func CheckEmailAvailable(ctx context.Context, accounts AccountLookup, email string) error {
	_, err := accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &common.DuplicateValueError{Field: FieldEmail}
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}
