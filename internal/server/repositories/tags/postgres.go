// Package tags provides the PostgreSQL-backed tag repository and the
// account-to-tag membership queries.
package tags

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

// FindByTitle returns the tag with exactly this title (case-sensitive) or
// common.ErrorNotFound.
func (r *PostgresRepository) FindByTitle(ctx context.Context, title string) (*models.Tag, error) {
	t := &models.Tag{}
	err := r.db.QueryRowContext(ctx, `SELECT id, title FROM tags WHERE title = $1`, title).Scan(&t.ID, &t.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Create inserts a new tag. If a concurrent transaction already inserted the
// same title, common.ErrorAlreadyExists is returned and the caller should
// resolve the tag again.
func (r *PostgresRepository) Create(ctx context.Context, title string) (*models.Tag, error) {
	query :=
		`INSERT INTO tags (title)
		 VALUES ($1)
		 ON CONFLICT (title) DO NOTHING
		 RETURNING id
		 `

	t := &models.Tag{Title: title}
	err := r.db.QueryRowContext(ctx, query, title).Scan(&t.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Tag, error) {
	return r.list(ctx, `SELECT id, title FROM tags ORDER BY title`)
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID int64) ([]models.Tag, error) {
	query :=
		`SELECT t.id, t.title
		 FROM tags t
		 JOIN account_tags at ON at.tag_id = t.id
		 WHERE at.account_id = $1
		 ORDER BY t.title
		 `
	return r.list(ctx, query, accountID)
}

// AddToAccount is idempotent: an existing membership is left untouched.
func (r *PostgresRepository) AddToAccount(ctx context.Context, accountID, tagID int64) error {
	query :=
		`INSERT INTO account_tags (account_id, tag_id)
		 VALUES ($1, $2)
		 ON CONFLICT (account_id, tag_id) DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, accountID, tagID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveFromAccount deletes the membership if present. The tag row is kept.
func (r *PostgresRepository) RemoveFromAccount(ctx context.Context, accountID, tagID int64) error {
	query := `DELETE FROM account_tags WHERE account_id = $1 AND tag_id = $2`
	if _, err := r.db.ExecContext(ctx, query, accountID, tagID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tags: %w", err)
	}
	defer rows.Close()

	result := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
