// Package kvstore provides the key-value slot the ledger document is
// persisted in. Providers only need Get and Set over opaque strings; the
// repository layer owns serialization.
package kvstore

import "context"

// Provider is a durable key-value slot. Get reports absence through its
// second return value and never treats a missing key as an error; Set
// replaces the whole value in one write.
type Provider interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
