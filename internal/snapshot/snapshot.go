// Package snapshot defines the key-value surface the record list is persisted to.
package snapshot

import "context"

// DefaultKey is the key the appointment list lives under.
const DefaultKey = "citas"

// KV stores whole values by key. Get reports found=false, with a nil error,
// when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
