package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// accountsDB opens a private in-memory database with one account, id 1,
// nicknamed "alpha".
func accountsDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE accounts (id INTEGER PRIMARY KEY, nickname TEXT NOT NULL UNIQUE, bio TEXT NOT NULL DEFAULT '')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO accounts (id, nickname) VALUES (1, 'alpha')`)
	require.NoError(t, err)
	return db
}

func nickname(t *testing.T, db *sql.DB, id int64) string {
	t.Helper()
	var n string
	require.NoError(t, db.QueryRow(`SELECT nickname FROM accounts WHERE id = ?`, id).Scan(&n))
	return n
}

func renameInTx(ctx context.Context, tx DBTX, id int64, to string) error {
	_, err := tx.ExecContext(ctx, `UPDATE accounts SET nickname = ? WHERE id = ?`, to, id)
	return err
}

func TestWithTx_CommitsNicknameChange(t *testing.T) {
	db := accountsDB(t, "dbx_commit")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := renameInTx(ctx, tx, 1, "bravo"); err != nil {
			return err
		}
		var seen string
		if err := tx.QueryRowContext(ctx, `SELECT nickname FROM accounts WHERE id = 1`).Scan(&seen); err != nil {
			return err
		}
		assert.Equal(t, "bravo", seen, "writes are visible inside the transaction")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bravo", nickname(t, db, 1))
}

func TestWithTx_RejectedChangeLeavesAccountUntouched(t *testing.T) {
	db := accountsDB(t, "dbx_rejected")
	rejected := errors.New("bio too long")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := renameInTx(ctx, tx, 1, "bravo"); err != nil {
			return err
		}
		return rejected
	})
	require.ErrorIs(t, err, rejected)
	assert.Equal(t, "alpha", nickname(t, db, 1), "nickname must roll back with the rejected change")
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := accountsDB(t, "dbx_panic")

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, renameInTx(ctx, tx, 1, "bravo"))
			panic("kaput")
		})
	})
	assert.Equal(t, "alpha", nickname(t, db, 1))
}

func TestWithTx_BeginError(t *testing.T) {
	db := accountsDB(t, "dbx_begin")
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestWithTx_CommitViolationIsReturnedAsIs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE accounts SET nickname`).WithArgs("bravo", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_nickname_unique"})

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return renameInTx(ctx, tx, 1, "bravo")
	})
	name, ok := UniqueViolation(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "accounts_nickname_unique", name)
	require.NoError(t, mock.ExpectationsWereMet())
}
