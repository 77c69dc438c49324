package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a red balloon", Normalize("  a red balloon \n"))
	assert.Equal(t, "", Normalize("   \t\n"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeClampsLength(t *testing.T) {
	long := strings.Repeat("x", MaxLength+100)
	assert.Len(t, Normalize(long), MaxLength)
}
