// Package document provides access to the documents under review: reading
// originals and proposals, discovering the proposal file for a document, and
// committing the reconstructed text back to disk.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Sentinel errors for document operations.
var (
	ErrNoProposal = errors.New("no proposal found for document")
)

// Store defines read and commit access to reviewable documents.
type Store interface {
	// Read returns the full text of the document at path.
	Read(path string) (string, error)

	// Commit replaces the document at path with text. The write is atomic:
	// on failure the previous content is untouched.
	Commit(path string, text string) error
}

// LocalStore reads and writes documents on the local filesystem.
type LocalStore struct{}

// Read returns the document content as a string.
func (LocalStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// Commit atomically replaces the document: the text is written to a temp file
// in the same directory, synced, then renamed over the target. Either the old
// document or the complete new one exists at every point.
func (LocalStore) Commit(path string, text string) error {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, ".redline-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	written := false
	defer func() {
		if !written {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Preserve the original's permissions when it exists.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpPath, info.Mode().Perm())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	written = true

	return nil
}

// FindProposal locates the proposal file for a document by trying each glob
// pattern in order and returning the first match. Patterns are doublestar
// globs relative to the document's directory; "{name}" expands to the
// document's filename without extension. Returns ErrNoProposal when no
// pattern matches.
func FindProposal(docPath string, patterns []string) (string, error) {
	dir := filepath.Dir(docPath)
	base := filepath.Base(docPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	for _, p := range patterns {
		pattern := filepath.Join(dir, strings.ReplaceAll(p, "{name}", name))

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return "", fmt.Errorf("glob %q: %w", p, err)
		}

		for _, m := range matches {
			if m != docPath {
				return m, nil
			}
		}
	}

	return "", ErrNoProposal
}
