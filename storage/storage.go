// Package storage keeps rendered documents somewhere they can be fetched
// again: a local directory or a Cloudflare R2 bucket.
package storage

import "context"

// Archive stores named documents. Put returns the location to record on the
// owning entity; Remove takes that same location.
type Archive interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, location string) error
}
