// Package testutil locates the repository and its fixtures for e2e tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the module root, two levels above the test package.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	root := filepath.Clean(filepath.Join(dir, "..", ".."))
	require.FileExists(t, filepath.Join(root, "go.mod"))
	return root
}

// FixturePath returns the absolute path of a file or directory under
// fixtures/. Missing fixtures are allowed so callers can exercise
// not-found handling.
func FixturePath(t *testing.T, elem ...string) string {
	t.Helper()
	return filepath.Join(append([]string{RepoRoot(t), "fixtures"}, elem...)...)
}
