package store

import "context"

// Remover deletes an uploaded object. The handler uses it to clean up after a
// failed metadata write so no orphaned objects accumulate.
type Remover interface {
	Remove(ctx context.Context, bucket, key string) error
}
