package store

import (
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
)

// substitute applies the schema-missing policy to the result of a remote
// read: a missing table yields sub() and no error, anything else passes
// through. The bool reports whether sub was used.
func substitute[T any](v T, err error, sub func() T) (T, bool, error) {
	if gateway.IsSchemaMissing(err) {
		return sub(), true, nil
	}
	return v, false, err
}

// tolerate drops schema-missing errors from a remote write.
func tolerate(err error) error {
	if gateway.IsSchemaMissing(err) {
		return nil
	}
	return err
}
