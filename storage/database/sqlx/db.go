package sqlxrepos

import (
	"database/sql/driver"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
)

var _ core.DBExecutor = (*sqlx.DB)(nil) // interface compliance check

// trapConnErr wraps a query error; a lost connection is escalated into a
// shutdown error so the API stops gracefully instead of limping on.
func trapConnErr(err error, msg string) error {
	if errors.Cause(err) == driver.ErrBadConn {
		return core.NewShutdownError("database connection lost: " + msg)
	}
	return errors.Wrap(err, msg)
}
