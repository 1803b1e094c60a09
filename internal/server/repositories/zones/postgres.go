// Package zones provides read access to the reference zone table and the
// account-to-zone membership queries. Zones themselves are never written here.
package zones

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByCityAndProvince resolves a zone by its identity. The local city name
// plays no part in the lookup.
func (r *PostgresRepository) FindByCityAndProvince(ctx context.Context, city, province string) (*models.Zone, error) {
	query := `SELECT id, city, local_name_of_city, province FROM zones WHERE city = $1 AND province = $2`

	z := &models.Zone{}
	err := r.db.QueryRowContext(ctx, query, city, province).Scan(&z.ID, &z.City, &z.LocalNameOfCity, &z.Province)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return z, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Zone, error) {
	return r.list(ctx, `SELECT id, city, local_name_of_city, province FROM zones ORDER BY province, city`)
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID int64) ([]models.Zone, error) {
	query :=
		`SELECT z.id, z.city, z.local_name_of_city, z.province
		 FROM zones z
		 JOIN account_zones az ON az.zone_id = z.id
		 WHERE az.account_id = $1
		 ORDER BY z.province, z.city
		 `
	return r.list(ctx, query, accountID)
}

// AddToAccount is idempotent: an existing membership is left untouched.
func (r *PostgresRepository) AddToAccount(ctx context.Context, accountID, zoneID int64) error {
	query :=
		`INSERT INTO account_zones (account_id, zone_id)
		 VALUES ($1, $2)
		 ON CONFLICT (account_id, zone_id) DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, accountID, zoneID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveFromAccount deletes the membership if present. The zone row is kept.
func (r *PostgresRepository) RemoveFromAccount(ctx context.Context, accountID, zoneID int64) error {
	query := `DELETE FROM account_zones WHERE account_id = $1 AND zone_id = $2`
	if _, err := r.db.ExecContext(ctx, query, accountID, zoneID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Zone, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select zones: %w", err)
	}
	defer rows.Close()

	result := []models.Zone{}
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.ID, &z.City, &z.LocalNameOfCity, &z.Province); err != nil {
			return nil, err
		}
		result = append(result, z)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
