package tags

import (
	"context"

	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

type Repository interface {
	FindByTitle(ctx context.Context, title string) (*models.Tag, error)
	Create(ctx context.Context, title string) (*models.Tag, error)
	ListAll(ctx context.Context) ([]models.Tag, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Tag, error)
	AddToAccount(ctx context.Context, accountID, tagID int64) error
	RemoveFromAccount(ctx context.Context, accountID, tagID int64) error
}
