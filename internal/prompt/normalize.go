package prompt

import "strings"

// MaxLength bounds the prompt forwarded to the model. Longer prompts are
// truncated rather than rejected; the model provider enforces its own limits
// on top of this.
const MaxLength = 2000

// Normalize trims surrounding whitespace and clamps the prompt to MaxLength.
// An empty result means the caller supplied no usable prompt.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > MaxLength {
		s = s[:MaxLength]
	}
	return s
}
