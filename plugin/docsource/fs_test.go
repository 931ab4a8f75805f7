package docsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFSSourceList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "standup-2025-03-10.txt", "alice (0:01)\nhello\n")
	writeFile(t, dir, "standup-2025-03-03.txt", "bob (0:01)\nhi\n")
	writeFile(t, dir, "notes.md", "ignored")
	// Make ordering deterministic.
	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "standup-2025-03-03.txt"), older, older))

	source := NewFSSource(dir)
	documents, err := source.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, documents, 2)
	require.Equal(t, "standup-2025-03-10.txt", documents[0].ExternalID)
	require.Equal(t, "standup-2025-03-10", documents[0].Name)
	require.Equal(t, "standup-2025-03-03.txt", documents[1].ExternalID)
}

func TestFSSourceListLimit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.txt", "y")

	source := NewFSSource(dir)
	documents, err := source.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, documents, 1)
}

func TestFSSourceListMissingDir(t *testing.T) {
	source := NewFSSource(filepath.Join(t.TempDir(), "absent"))
	documents, err := source.List(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, documents)
}

func TestFSSourceFetchText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.txt", "raw transcript text")

	source := NewFSSource(dir)
	text, err := source.FetchText(context.Background(), "doc.txt")
	require.NoError(t, err)
	require.Equal(t, "raw transcript text", text)

	_, err = source.FetchText(context.Background(), "missing.txt")
	require.Error(t, err)

	_, err = source.FetchText(context.Background(), "../escape.txt")
	require.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
