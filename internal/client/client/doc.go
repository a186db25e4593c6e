// Package client contains the transport layer of the lyra CLI.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface) for the
//     registry: Login, Register, UpdateUser, GetPackages, GetUser.
//  2. A concrete JSON-over-HTTP implementation (HTTPClient). Routes are
//     relative to a configured base URL; authenticated routes carry
//     "Authorization: Bearer <token>".
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying the embedded goose migrations.
//
// # Error Handling
//
// Every failure wraps one sentinel so callers can tell them apart with
// errors.Is, or collapse them with Kind:
//
//   - ErrTransport: no response (network error, timeout, cancellation).
//   - ErrStatus:    non-2xx answer; errors.As gives *StatusError.
//   - ErrShape:     2xx body that does not match the expected JSON.
//
// Nothing here retries.
package client
