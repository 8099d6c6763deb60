// Package gateway is the contract between the client stores and the remote
// backend.
//
// # Overview
//
// A Gateway bundles an AuthClient (sign-up, sign-in, sign-out, session
// lookup and session-change notifications) with typed repositories over the
// remote tables: profiles, nutrition_logs, subscriptions and the meal and
// restaurant catalog.
//
// Two implementations exist: the PostgreSQL gateway in package gateway/pg and
// the in-memory Memory gateway in this package, used for tests and for the
// offline demo.
//
// # Error Handling
//
// Implementations classify failures once, at this boundary, into an *Error
// with an explicit Kind. A missing remote table is KindSchemaMissing and is
// matched with IsSchemaMissing. "No matching row" is the ErrNoRows sentinel,
// which is distinct from a missing table. MessageOf turns any error shape into
// a single human-readable string.
package gateway
