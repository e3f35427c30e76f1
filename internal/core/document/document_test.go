package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_ReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")

	store := LocalStore{}

	require.NoError(t, store.Commit(path, "# Title\n\nBody.\n"))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nBody.\n", got)
}

func TestLocalStore_CommitOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	store := LocalStore{}
	require.NoError(t, store.Commit(path, "new"))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestLocalStore_CommitLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")

	store := LocalStore{}
	require.NoError(t, store.Commit(path, "content"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.md", entries[0].Name())
}

func TestLocalStore_ReadMissing(t *testing.T) {
	store := LocalStore{}

	_, err := store.Read(filepath.Join(t.TempDir(), "missing.md"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read document")
}

func TestFindProposal(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "plan.md")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0o644))

	tests := []struct {
		name     string
		files    []string
		patterns []string
		want     string // relative to dir; empty means ErrNoProposal
	}{
		{
			name:     "sibling proposal",
			files:    []string{"plan.proposed.md"},
			patterns: []string{"{name}.proposed.md"},
			want:     "plan.proposed.md",
		},
		{
			name:     "pattern order wins",
			files:    []string{"plan.proposed.md", "proposals/plan-v2.md"},
			patterns: []string{"proposals/{name}*.md", "{name}.proposed.md"},
			want:     filepath.Join("proposals", "plan-v2.md"),
		},
		{
			name:     "no match",
			files:    []string{"other.proposed.md"},
			patterns: []string{"{name}.proposed.md"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := t.TempDir()
			doc := filepath.Join(sub, "plan.md")
			require.NoError(t, os.WriteFile(doc, []byte("doc"), 0o644))
			for _, f := range tt.files {
				full := filepath.Join(sub, f)
				require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
				require.NoError(t, os.WriteFile(full, []byte("proposal"), 0o644))
			}

			got, err := FindProposal(doc, tt.patterns)
			if tt.want == "" {
				require.ErrorIs(t, err, ErrNoProposal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(sub, tt.want), got)
		})
	}
}

func TestFindProposal_NeverReturnsDocumentItself(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "plan.md")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0o644))

	// The pattern matches the document itself and nothing else.
	_, err := FindProposal(docPath, []string{"{name}.md"})

	require.ErrorIs(t, err, ErrNoProposal)
}
