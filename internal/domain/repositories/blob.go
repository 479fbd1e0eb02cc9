package repositories

import "context"

// BlobStore is a named-slot durable store for serialized collections.
// One slot holds one collection as a single opaque value; writes replace
// the whole slot atomically.
type BlobStore interface {
	// Get returns the slot's contents, or (nil, nil) if the slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the slot's contents in a single atomic write.
	Put(ctx context.Context, key string, data []byte) error
}
