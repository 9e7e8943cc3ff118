// Package cli provides the interactive Dutch command-line client.
//
// It wires configuration, local storage, the session, the GraphQL query
// client and the currency services, then either runs one command (cobra
// subcommands) or an interactive REPL. Typical flow: restore the session,
// load cached currencies, sync them when the cache is empty and the server
// answers, guess a default currency, then execute user commands.
//
// Notifications from the query client are printed as "[severity] message"
// lines and kept in an expiring toast queue.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
