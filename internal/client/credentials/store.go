// Package credentials holds the single bearer credential of the client.
//
// The Store contract is a zero-or-one slot: Get, Set and Clear. There is no
// expiry and no validation here; whether a credential is usable is decided
// by the identity decoder each time it is read.
package credentials

import "context"

// Key is the fixed slot name the credential is stored under.
const Key = "token"

// Store is the persisted credential slot.
//
// Get reports ok=false when the slot is empty. An empty string counts as
// empty. Every Set/Clear is visible to the next Get in the same process.
type Store interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
