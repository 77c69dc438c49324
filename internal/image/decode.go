package image

import (
	"encoding/base64"
	"fmt"
)

// Decode turns the model's base64 payload into raw bytes. It only fails on
// malformed input, which means the provider returned garbage.
func Decode(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}
	return data, nil
}
