package zones

import (
	"context"

	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

type Repository interface {
	FindByCityAndProvince(ctx context.Context, city, province string) (*models.Zone, error)
	ListAll(ctx context.Context) ([]models.Zone, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Zone, error)
	AddToAccount(ctx context.Context, accountID, zoneID int64) error
	RemoveFromAccount(ctx context.Context, accountID, zoneID int64) error
}
