package param

import "context"

// Fetcher resolves a secret by name from an external parameter store.
type Fetcher interface {
	Fetch(context.Context, string) (string, error)
}
