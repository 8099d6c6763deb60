// Package cli provides the interactive nutrio command-line client.
//
// It wires configuration, local storage, the remote gateway and the stores
// into an interactive REPL. Typical flow: restore the persisted language,
// favorites and session, start a background connectivity watcher, and
// execute user commands.
//
// Key features:
//   - Signup / Login / Logout
//   - Profile, goals, avatar upload and the seven-day progress window
//   - Nutrition logging, by amounts or by catalog meal
//   - Plans, subscribe and cancel
//   - Meal and restaurant browsing, favorites
//   - English / Arabic switching
//
// The REPL is started via App.Run(ctx, interval), which blocks until the
// user exits. See NewApp, StartOnlineStatusWatcher, and runREPL for details.
package cli
