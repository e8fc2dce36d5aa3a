package storage

import "context"

// Store is the key-value persistence collaborator used by the cart and
// catalog. Values are JSON documents. Writes are best effort from the
// caller's perspective: failures are surfaced but callers log and
// continue, keeping in-memory state authoritative.
type Store interface {
	// SaveJSON serialises v as JSON and stores it under key.
	SaveJSON(ctx context.Context, key string, v any) error
	// LoadJSON unmarshals the value at key into dst. It reports whether
	// the key existed.
	LoadJSON(ctx context.Context, key string, dst any) (bool, error)
	// Delete removes the key if present.
	Delete(ctx context.Context, key string) error
}
