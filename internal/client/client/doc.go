// Package client contains the data-access building blocks of the Dutch
// client.
//
// # Overview
//
// The package provides:
//  1. A transport abstraction (Transport) with an HTTP implementation that
//     posts {query, variables} to a single GraphQL endpoint and attaches a
//     bearer credential iff a token is held.
//  2. Classify, a pure function that maps a raw response to one of five
//     outcome kinds: success, business errors, unauthorized, rate limited
//     and transport failure.
//  3. QueryClient, which snapshots the session token, sends the request,
//     classifies the result and performs the user-facing side effects
//     (notification, forced logout, redirect to login). A single session loss
//     never produces more than one notification.
//  4. Execute, the typed "data or nothing" entry point used by services.
//  5. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Execute collapses every failure to nil. Outcome.Err carries the detail for
// logging: it matches one of ErrUnauthorized, ErrRateLimited, ErrBusiness or
// ErrUnavailable with errors.Is and unwraps to a *goerrors.Error envelope
// with category, status code and text code.
//
// See Also
//
//   - Transport:  Transport, HTTPTransport, Ping
//   - Pipeline:   Classify, QueryClient, Execute
//   - DB helpers: InitDatabase, RunMigrations
package client
