package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/tags"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/zones"
	"github.com/dmitrijs2005/gophsettings/internal/server/validators"
	"github.com/dmitrijs2005/gophsettings/internal/server/zonekey"
)

// AssociationManager adds and removes an account's tag and zone memberships.
// It is bound to the repositories of one transaction; every method is
// idempotent with respect to the membership it touches.
type AssociationManager struct {
	tags  tags.Repository
	zones zones.Repository
}

func NewAssociationManager(t tags.Repository, z zones.Repository) *AssociationManager {
	return &AssociationManager{tags: t, zones: z}
}

// AddTag resolves the tag by exact title, creating it on first use, and adds
// it to the account. A tag created concurrently by another transaction is
// resolved again rather than reported.
func (m *AssociationManager) AddTag(ctx context.Context, accountID int64, title string) error {
	if err := common.NewValidationError(validators.ValidateTagTitle(title)); err != nil {
		return err
	}

	tag, err := m.findOrCreateTag(ctx, title)
	if err != nil {
		return err
	}
	return m.tags.AddToAccount(ctx, accountID, tag.ID)
}

// RemoveTag drops the membership. The tag itself stays reserved.
func (m *AssociationManager) RemoveTag(ctx context.Context, accountID int64, title string) error {
	tag, err := m.tags.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &common.NotFoundError{Entity: "tag", Key: title}
		}
		return err
	}
	return m.tags.RemoveFromAccount(ctx, accountID, tag.ID)
}

func (m *AssociationManager) AddZone(ctx context.Context, accountID int64, key models.ZoneKey) error {
	zone, err := m.resolveZone(ctx, key)
	if err != nil {
		return err
	}
	return m.zones.AddToAccount(ctx, accountID, zone.ID)
}

func (m *AssociationManager) RemoveZone(ctx context.Context, accountID int64, key models.ZoneKey) error {
	zone, err := m.resolveZone(ctx, key)
	if err != nil {
		return err
	}
	return m.zones.RemoveFromAccount(ctx, accountID, zone.ID)
}

func (m *AssociationManager) findOrCreateTag(ctx context.Context, title string) (*models.Tag, error) {
	tag, err := m.tags.FindByTitle(ctx, title)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	tag, err = m.tags.Create(ctx, title)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, common.ErrorAlreadyExists) {
		return nil, err
	}

	// lost the first-use race
	tag, err = m.tags.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("error resolving tag %q after concurrent create: %w", title, err)
	}
	return tag, nil
}

// resolveZone looks the zone up by (city, province); zones are never created
// here.
func (m *AssociationManager) resolveZone(ctx context.Context, key models.ZoneKey) (*models.Zone, error) {
	zone, err := m.zones.FindByCityAndProvince(ctx, key.City, key.Province)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: "zone", Key: zonekey.FormatKey(key)}
		}
		return nil, err
	}
	return zone, nil
}
