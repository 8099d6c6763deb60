// Package pg implements gateway.Gateway on PostgreSQL.
//
// The backend is consumed directly over SQL through the pgx stdlib driver.
// Accounts live in the users table with argon2id password hashes; sessions
// are HS256 JWTs that the client may persist and later hand back to
// RestoreSession. The schema is embedded (see package migrations) and applied
// with goose by Migrate.
//
// Every error leaving this package is classified by mapError: sql.ErrNoRows
// becomes gateway.ErrNoRows, SQLSTATE 42P01 becomes a schema-missing
// *gateway.Error, connection failures become KindNetwork.
package pg
