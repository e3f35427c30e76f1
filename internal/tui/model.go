// Package tui implements the interactive review interface: a scrollable diff
// of review units with per-unit and bulk decisions, a markdown preview of the
// pending result, and an apply-and-close action that commits the
// reconstructed document.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/redlinehq/redline/internal/core/logging"
	"github.com/redlinehq/redline/internal/core/review"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// Options configure the review TUI.
type Options struct {
	DocumentPath string
	ProposalPath string
	Units        []review.Unit
	Store        *review.Store

	// Commit writes the reconstructed document at apply time.
	Commit func(text string) error

	// MarkdownStyle is the glamour style for the preview overlay.
	MarkdownStyle string

	// OnVisibleUnit is an optional observer notified when the focused unit
	// changes. Purely cosmetic; it never influences decisions or
	// reconstruction.
	OnVisibleUnit func(index int)
}

// Model is the bubbletea model for a review session.
type Model struct {
	opts     Options
	units    []review.Unit
	store    *review.Store
	modified []int // unit indices of modified units, ascending
	cursor   int   // position within modified

	viewport    viewport.Model
	unitOffsets map[int]int // unit index -> first rendered line
	width       int
	height      int
	ready       bool

	showPreview bool
	stale       bool
	status      string

	watcher *DocumentWatcher
	log     zerolog.Logger

	applied   bool
	finalText string
	err       error
}

// New creates a review TUI model.
func New(opts Options) Model {
	m := Model{
		opts:  opts,
		units: opts.Units,
		store: opts.Store,
		log:   logging.Component("tui"),
	}

	for i, u := range opts.Units {
		if u.Kind == review.BlockModified {
			m.modified = append(m.modified, i)
		}
	}

	watcher, err := NewDocumentWatcher(opts.DocumentPath)
	if err != nil {
		m.log.Warn().Err(err).Str("path", opts.DocumentPath).Msg("document watcher unavailable")
	} else {
		m.watcher = watcher
	}

	return m
}

// Applied reports whether the session ended with an apply.
func (m Model) Applied() bool { return m.applied }

// FinalText returns the reconstructed document committed at apply time.
func (m Model) FinalText() string { return m.finalText }

// Err returns the commit error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Init starts the document watcher.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

// Update handles messages and keyboard input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.refresh()
		return m, nil

	case staleMsg:
		m.stale = true
		m.log.Warn().Str("path", msg.path).Msg("document changed on disk during review")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.close()
		return m, tea.Quit

	case "esc":
		if m.showPreview {
			m.showPreview = false
			m.refresh()
			return m, nil
		}
		m.close()
		return m, tea.Quit

	case "p":
		m.showPreview = !m.showPreview
		m.refresh()
		return m, nil

	case "enter":
		return m.apply()
	}

	if m.showPreview {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "g":
		m.setCursor(0)
		return m, nil
	case "G":
		m.setCursor(len(m.modified) - 1)
		return m, nil

	case "a":
		m.decide(review.DecisionIncoming)
		return m, nil
	case "x":
		m.decide(review.DecisionCurrent)
		return m, nil
	case "u":
		if idx := m.currentIndex(); idx >= 0 {
			m.store.Clear(idx)
			m.refresh()
		}
		return m, nil

	case "A":
		m.store.AcceptAllIncoming()
		m.refresh()
		return m, nil
	case "X":
		m.store.AcceptAllCurrent()
		m.refresh()
		return m, nil
	case "U":
		m.store.ResetAll()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// apply reconstructs with the conservative keep-current default, so units the
// reviewer never decided keep the original text, and commits the result.
func (m Model) apply() (tea.Model, tea.Cmd) {
	text := review.Reconstruct(m.units, m.store.Decisions(), review.DecisionCurrent)

	if m.opts.Commit != nil {
		if err := m.opts.Commit(text); err != nil {
			m.err = err
			m.status = "apply failed: " + err.Error()
			m.log.Error().Err(err).Msg("commit failed")
			m.refresh()
			return m, nil
		}
	}

	m.applied = true
	m.finalText = text
	m.log.Info().Int("units", len(m.units)).Msg("review applied")
	m.close()
	return m, tea.Quit
}

// currentIndex returns the unit index under the cursor, -1 when there are no
// modified units.
func (m Model) currentIndex() int {
	if len(m.modified) == 0 {
		return -1
	}
	return m.modified[m.cursor]
}

func (m *Model) decide(d review.Decision) {
	idx := m.currentIndex()
	if idx < 0 {
		return
	}
	m.store.Set(idx, d)
	m.advanceToPending()
	m.refresh()
}

// advanceToPending moves the cursor to the next undecided unit, wrapping
// around; it stays put when everything is decided.
func (m *Model) advanceToPending() {
	n := len(m.modified)
	for i := 1; i <= n; i++ {
		candidate := (m.cursor + i) % n
		if m.store.Get(m.modified[candidate]) == review.DecisionPending {
			m.setCursor(candidate)
			return
		}
	}
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(pos int) {
	if len(m.modified) == 0 {
		return
	}
	pos = min(max(pos, 0), len(m.modified)-1)
	if pos == m.cursor {
		m.refresh()
		return
	}
	m.cursor = pos
	if m.opts.OnVisibleUnit != nil {
		m.opts.OnVisibleUnit(m.modified[m.cursor])
	}
	m.refresh()
}

func (m Model) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
