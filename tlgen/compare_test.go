package tlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIdentical(t *testing.T) {
	assert.Empty(t, Compare([]byte("a\nb\n"), []byte("a\nb\n"), "types.go"))
}

func TestCompareDiff(t *testing.T) {
	diff := Compare([]byte("a\nb\nc\n"), []byte("a\nB\nc\n"), "types.go")

	assert.Contains(t, diff, "--- types.go (on disk)")
	assert.Contains(t, diff, "+++ types.go (generated)")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+B\n")
}
