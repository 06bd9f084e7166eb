package tlgen

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

// Compare returns a unified diff from expected (the file on disk) to actual
// (a fresh generation), or "" when they are identical
func Compare(expected, actual []byte, name string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: name + " (on disk)",
		ToFile:   name + " (generated)",
		Context:  3,
	})
	if err != nil || diff == "" {
		// Only line endings differ
		return "--- " + name + " (on disk)\n+++ " + name + " (generated)\n@@ content differs @@\n"
	}
	return diff
}
