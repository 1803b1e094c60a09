// Package accounts provides the PostgreSQL-backed account repository.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

const selectAccount = `SELECT id, email, nickname, password_hash,
		bio, url, occupation, location, profile_image,
		study_created_by_email, study_created_by_web,
		study_enrollment_result_by_email, study_enrollment_result_by_web,
		study_updated_by_email, study_updated_by_web,
		created_at
	FROM accounts`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(
		&a.ID, &a.Email, &a.Nickname, &a.PasswordHash,
		&a.Bio, &a.URL, &a.Occupation, &a.Location, &a.ProfileImage,
		&a.StudyCreatedByEmail, &a.StudyCreatedByWeb,
		&a.StudyEnrollmentResultByEmail, &a.StudyEnrollmentResultByWeb,
		&a.StudyUpdatedByEmail, &a.StudyUpdatedByWeb,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// constraintFields names the field behind each accounts unique index, by
// PostgreSQL constraint name and by SQLite "table.column".
var constraintFields = map[string]string{
	"accounts_email_unique":    "email",
	"accounts.email":           "email",
	"accounts_nickname_unique": "nickname",
	"accounts.nickname":        "nickname",
}

// ConstraintField maps a violated unique constraint to the field it guards.
// Constraints outside the accounts table are reported by name.
func ConstraintField(constraint string) string {
	if field, ok := constraintFields[constraint]; ok {
		return field
	}
	if constraint == "" {
		return "unknown"
	}
	return constraint
}

// mapWriteError turns unique-index violations into DuplicateValueError and
// wraps everything else.
func mapWriteError(err error) error {
	if constraint, ok := dbx.UniqueViolation(err); ok {
		return &common.DuplicateValueError{Field: ConstraintField(constraint)}
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (email, nickname, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, account.Email, account.Nickname, account.PasswordHash).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, selectAccount+` WHERE id = $1`, id))
}

// GetByIDForUpdate reads the account and locks its row until the enclosing
// transaction ends, serialising concurrent mutations of one account.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, selectAccount+` WHERE id = $1 FOR UPDATE`, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, selectAccount+` WHERE email = $1`, email))
}

func (r *PostgresRepository) GetByNickname(ctx context.Context, nickname string) (*models.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, selectAccount+` WHERE nickname = $1`, nickname))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, p models.Profile) error {
	query :=
		`UPDATE accounts
		 SET bio = $2, url = $3, occupation = $4, location = $5, profile_image = $6
		 WHERE id = $1
		 `
	return r.exec(ctx, query, id, p.Bio, p.URL, p.Occupation, p.Location, p.ProfileImage)
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return r.exec(ctx, `UPDATE accounts SET password_hash = $2 WHERE id = $1`, id, hash)
}

// UpdateNickname relies on accounts_nickname_unique: a concurrent writer that
// won the race makes this statement fail with a DuplicateValueError.
func (r *PostgresRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	return r.exec(ctx, `UPDATE accounts SET nickname = $2 WHERE id = $1`, id, nickname)
}

func (r *PostgresRepository) UpdateNotifications(ctx context.Context, id int64, n models.Notifications) error {
	query :=
		`UPDATE accounts
		 SET study_created_by_email = $2, study_created_by_web = $3,
		     study_enrollment_result_by_email = $4, study_enrollment_result_by_web = $5,
		     study_updated_by_email = $6, study_updated_by_web = $7
		 WHERE id = $1
		 `
	return r.exec(ctx, query, id,
		n.StudyCreatedByEmail, n.StudyCreatedByWeb,
		n.StudyEnrollmentResultByEmail, n.StudyEnrollmentResultByWeb,
		n.StudyUpdatedByEmail, n.StudyUpdatedByWeb)
}

// exec runs a single-row UPDATE and reports ErrorNotFound when no row matched.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
