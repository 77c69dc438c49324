package image

import "context"

// Generator produces a base64-encoded image for a prompt. The payload stays
// encoded until the handler hands it to Decode; malformed payloads are the
// provider's fault and surface as provider errors.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
