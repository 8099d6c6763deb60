package pg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/jackc/pgx/v5/pgconn"
)

const sqlStateUniqueViolation = "23505"

// mapError classifies err for table. It is idempotent.
func mapError(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return gateway.ErrNoRows
	}
	var ge *gateway.Error
	if errors.As(err, &ge) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == gateway.SQLStateUndefinedTable {
			return gateway.SchemaMissing(table, err)
		}
		return &gateway.Error{
			Kind:        kindOfSQLState(pgErr.Code),
			Table:       table,
			Code:        pgErr.Code,
			Message:     pgErr.Message,
			Description: pgErr.Hint,
			Details:     pgErr.Detail,
			Err:         err,
		}
	}

	if gateway.IsSchemaMissingMessage(err.Error()) {
		return gateway.SchemaMissing(table, err)
	}
	if isNetworkError(err) {
		return &gateway.Error{Kind: gateway.KindNetwork, Table: table, Message: "Network request failed", Err: err}
	}
	return &gateway.Error{Kind: gateway.KindUnknown, Table: table, Err: err}
}

func kindOfSQLState(code string) gateway.Kind {
	switch {
	case strings.HasPrefix(code, "22"), strings.HasPrefix(code, "23"):
		return gateway.KindValidation
	case strings.HasPrefix(code, "28"):
		return gateway.KindAuth
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"):
		return gateway.KindNetwork
	default:
		return gateway.KindUnknown
	}
}

func isNetworkError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
