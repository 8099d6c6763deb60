package gateway

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoRows means the query matched nothing.
	ErrNoRows = errors.New("no rows")
	// ErrNotAuthenticated is returned by data calls made without a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SQLStateUndefinedTable is PostgreSQL's undefined_table code.
const SQLStateUndefinedTable = "42P01"

type Kind int

const (
	KindUnknown Kind = iota
	KindSchemaMissing
	KindValidation
	KindNetwork
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindSchemaMissing:
		return "schema missing"
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Error is the tagged error every gateway implementation returns.
// Message, Description and Details carry whatever human-readable text the
// backend produced; Err is the underlying cause, if any.
type Error struct {
	Kind        Kind
	Table       string
	Code        string
	Message     string
	Description string
	Details     string
	Err         error
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Message != "":
		msg = e.Message
	case e.Description != "":
		msg = e.Description
	case e.Details != "":
		msg = e.Details
	case e.Err != nil:
		msg = e.Err.Error()
	default:
		msg = e.Kind.String()
	}
	if e.Table != "" {
		return fmt.Sprintf("%s: %s", e.Table, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// SchemaMissing builds the error for an absent table.
func SchemaMissing(table string, cause error) *Error {
	return &Error{
		Kind:    KindSchemaMissing,
		Table:   table,
		Code:    SQLStateUndefinedTable,
		Message: fmt.Sprintf("relation \"public.%s\" does not exist", table),
		Err:     cause,
	}
}

// IsSchemaMissingMessage recognizes backend messages about a missing relation,
// e.g. `relation "public.profiles" does not exist`.
func IsSchemaMissingMessage(msg string) bool {
	return strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

func IsSchemaMissing(err error) bool {
	return KindOf(err) == KindSchemaMissing
}
