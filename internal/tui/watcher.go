package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// staleMsg is sent when the document under review changes on disk. Unit
// indices are only valid for the diff the session started with, so an
// external edit makes the whole session stale.
type staleMsg struct {
	path string
}

// DocumentWatcher watches the reviewed document for external changes.
type DocumentWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
}

// NewDocumentWatcher creates a watcher for the given document path.
func NewDocumentWatcher(path string) (*DocumentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory: editors replace files via rename, which
	// silently drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &DocumentWatcher{
		watcher:     watcher,
		path:        filepath.Clean(path),
		debounceDur: 100 * time.Millisecond,
	}, nil
}

// Start returns a command that blocks until the document changes.
func (w *DocumentWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}

				// Debounce: wait for changes to settle, then drain
				// whatever arrived meanwhile.
				time.Sleep(w.debounceDur)
				drained := false
				for !drained {
					select {
					case <-w.watcher.Events:
					default:
						drained = true
					}
				}

				return staleMsg{path: w.path}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				// Keep watching.
			}
		}
	}
}

// Close stops the watcher.
func (w *DocumentWatcher) Close() error {
	return w.watcher.Close()
}
