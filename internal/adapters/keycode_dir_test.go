package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeycodeDoc(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func documentPaths(t *testing.T, dir string, adapter KeycodeDirAdapter) []string {
	t.Helper()
	docs, err := adapter.LoadDocuments(context.Background(), dir)
	require.NoError(t, err)
	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		paths = append(paths, doc.Path)
	}
	return paths
}

func TestKeycodeDirAdapter_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "keycodes_0.0.1_basic.hjson", `{keycodes: {"0x0004": {key: "KC_A", label: "A"}}}`)
	writeKeycodeDoc(t, dir, "keycodes.json", `{"keycodes": {}}`)
	writeKeycodeDoc(t, dir, "README.md", "docs")
	// Nested documents other than the supplementary one are ignored.
	writeKeycodeDoc(t, dir, "extras/keycodes_german_0.0.1.hjson", `{keycodes: {}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.hjson"), 0755))

	paths := documentPaths(t, dir, NewKeycodeDirAdapter(2, ""))
	if diff := cmp.Diff([]string{filepath.Join(dir, "keycodes_0.0.1_basic.hjson")}, paths); diff != "" {
		t.Fatalf("unexpected documents (-want +got):\n%s", diff)
	}
}

func TestKeycodeDirAdapter_SupplementaryDocumentIsLast(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "keycodes_0.0.1_basic.hjson", `{keycodes: {}}`)
	writeKeycodeDoc(t, dir, "keycodes_0.0.1_z.hjson", `{keycodes: {}}`)
	writeKeycodeDoc(t, dir, SupplementaryKeycodeDocument, `{keycodes: {}}`)

	paths := documentPaths(t, dir, NewKeycodeDirAdapter(1, ""))
	want := []string{
		filepath.Join(dir, "keycodes_0.0.1_basic.hjson"),
		filepath.Join(dir, "keycodes_0.0.1_z.hjson"),
		filepath.Join(dir, SupplementaryKeycodeDocument),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected documents (-want +got):\n%s", diff)
	}
}

func TestKeycodeDirAdapter_ParseFailuresAreReportedPerDocument(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "a.hjson", `{keycodes: {"0x0004": {key: "KC_A", label: "A", aliases: ["A"]}}}`)
	writeKeycodeDoc(t, dir, "b.hjson", `{keycodes: {"0x0005": {key: "KC_B"`)
	writeKeycodeDoc(t, dir, "c.hjson", `{ranges: {}}`)
	writeKeycodeDoc(t, dir, "d.hjson", `{keycodes: {"0x0006": {label: "C"}}}`)

	docs, err := NewKeycodeDirAdapter(4, "").LoadDocuments(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, docs, 4)

	require.NoError(t, docs[0].Err)
	entry := docs[0].File.Keycodes["0x0004"]
	assert.Equal(t, "KC_A", entry.Key)
	assert.Equal(t, "A", entry.Label)
	assert.Equal(t, []string{"A"}, entry.Aliases)

	require.Error(t, docs[1].Err)
	require.Error(t, docs[2].Err)
	assert.Contains(t, docs[2].Err.Error(), "missing field `keycodes`")
	require.Error(t, docs[3].Err)
	assert.Contains(t, docs[3].Err.Error(), "missing field `key`")
}

func TestKeycodeDirAdapter_ReadFailureAbortsBuild(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "keycodes_0.0.1_basic.hjson", `{keycodes: {"0x0004": {key: "KC_A", label: "A"}}}`)
	// A dangling link is listed but cannot be read.
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing-target.hjson"), filepath.Join(dir, "broken.hjson")))

	docs, err := NewKeycodeDirAdapter(2, "").LoadDocuments(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "failed to read keycode document")
	assert.Nil(t, docs)
}

func TestKeycodeDirAdapter_SupplementaryDirectoryIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "keycodes_0.0.1_basic.hjson", `{keycodes: {}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, SupplementaryKeycodeDocument), 0755))

	paths := documentPaths(t, dir, NewKeycodeDirAdapter(1, ""))
	if diff := cmp.Diff([]string{filepath.Join(dir, "keycodes_0.0.1_basic.hjson")}, paths); diff != "" {
		t.Fatalf("unexpected documents (-want +got):\n%s", diff)
	}
}

func TestKeycodeDirAdapter_MaxVersion(t *testing.T) {
	dir := t.TempDir()
	writeKeycodeDoc(t, dir, "keycodes_0.0.1.hjson", `{keycodes: {}}`)
	writeKeycodeDoc(t, dir, "keycodes_0.0.2_kb.hjson", `{keycodes: {}}`)
	writeKeycodeDoc(t, dir, "custom.hjson", `{keycodes: {}}`)

	paths := documentPaths(t, dir, NewKeycodeDirAdapter(0, "0.0.1"))
	want := []string{
		filepath.Join(dir, "custom.hjson"),
		filepath.Join(dir, "keycodes_0.0.1.hjson"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected documents (-want +got):\n%s", diff)
	}
}

func TestKeycodeDirAdapter_EmptyDirectory(t *testing.T) {
	docs, err := NewKeycodeDirAdapter(0, "").LoadDocuments(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestKeycodeDirAdapter_MissingDirectoryErrors(t *testing.T) {
	_, err := NewKeycodeDirAdapter(0, "").LoadDocuments(context.Background(), "/nonexistent/keycodes/dir")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "failed to list keycode directory")
}

func TestKeycodeDirAdapter_EmptyDirectoryArgument(t *testing.T) {
	_, err := NewKeycodeDirAdapter(0, "").LoadDocuments(context.Background(), " ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestKeycodeDirAdapter_Fixtures(t *testing.T) {
	docs, err := NewKeycodeDirAdapter(0, "").LoadDocuments(context.Background(), "../../fixtures/keycodes")
	require.NoError(t, err)

	var parsed, failed []string
	for _, doc := range docs {
		if doc.Err != nil {
			failed = append(failed, filepath.Base(doc.Path))
			continue
		}
		parsed = append(parsed, filepath.Base(doc.Path))
	}
	if diff := cmp.Diff([]string{
		"keycodes_0.0.1_basic.hjson",
		"keycodes_0.0.1_modifiers.hjson",
		"keycodes_0.0.1_quantum.hjson",
		"keycodes_us_international_0.0.1.hjson",
	}, parsed); diff != "" {
		t.Fatalf("unexpected parsed documents (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{
		"keycodes_0.0.2_broken.hjson",
		"keycodes_0.0.3_ranges.hjson",
	}, failed); diff != "" {
		t.Fatalf("unexpected failed documents (-want +got):\n%s", diff)
	}
}
