package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/tags"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/zones"
)

// RepositoryManager vends repositories bound to a DBTX so that services can
// obtain the same set of stores either over the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Tags(db dbx.DBTX) tags.Repository
	Zones(db dbx.DBTX) zones.Repository
}
