package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"syscall"

	"addressbook/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes the store translates explicitly.
const (
	codeUniqueViolation   = "23505"
	codeUndefinedTable    = "42P01"
	codeUndefinedColumn   = "42703"
	codeInvalidCatalog    = "3D000"
	codeAdminShutdown     = "57P01"
	codeCrashShutdown     = "57P02"
	codeCannotConnectNow  = "57P03"
	connectionClassPrefix = "08"
)

// TranslateError maps a driver or gorm error onto the application taxonomy.
// Application errors pass through unchanged; anything unknown becomes EINTERNAL.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Wrap(errs.ECONFLICT, err, "duplicate entry")
	}

	if code := sqlState(err); code != "" {
		switch {
		case code == codeUniqueViolation:
			return errs.Wrap(errs.ECONFLICT, err, "duplicate entry")
		case code == codeUndefinedTable, code == codeUndefinedColumn, code == codeInvalidCatalog:
			return errs.Wrap(errs.EMISCONFIGURED, err, "database configuration error")
		case code == codeAdminShutdown, code == codeCrashShutdown, code == codeCannotConnectNow,
			strings.HasPrefix(code, connectionClassPrefix):
			return errs.Wrap(errs.EUNAVAILABLE, err, "database unavailable")
		}
	}

	// The caller went away; nothing is wrong with the store.
	if errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ECANCELED, err, "request canceled")
	}

	if isConnectionError(err) {
		return errs.Wrap(errs.EUNAVAILABLE, err, "database unavailable")
	}

	return errs.Wrap(errs.EINTERNAL, err, "database error")
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded)
}
