package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

// Repository persists accounts. Lookups return common.ErrorNotFound when no
// row matches; writes that collide with the email or nickname unique index
// return *common.DuplicateValueError.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByNickname(ctx context.Context, nickname string) (*models.Account, error)
	UpdateProfile(ctx context.Context, id int64, profile models.Profile) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	UpdateNotifications(ctx context.Context, id int64, n models.Notifications) error
}
