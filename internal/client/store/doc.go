// Package store holds the client-side state containers: language, user,
// subscription and catalog.
//
// Each store owns one snapshot guarded by a sync.RWMutex. Actions run in the
// caller's goroutine, replace the snapshot as a whole and then notify
// subscribers outside the lock. Stores never hide behind package globals;
// the REPL builds them once and passes them around.
//
// Remote failures fall in two classes. A missing backend table is expected:
// the store substitutes mock data and carries on. Everything else is either
// swallowed with a Warn log (reads) or returned as an *ActionError (writes
// the user asked for).
package store
