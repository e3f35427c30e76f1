package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/redlinehq/redline/internal/core/review"
	"github.com/redlinehq/redline/internal/core/styles"
)

// View renders the full terminal frame.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// refresh rebuilds the viewport content and keeps the focused unit visible.
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	if m.showPreview {
		m.viewport.SetContent(m.renderPreview())
		m.viewport.GotoTop()
		return
	}

	m.viewport.SetContent(m.renderBody())
	m.ensureCursorVisible()
}

// renderPreview shows the document as it would be written if the reviewer
// applied right now, with undecided units keeping the original text.
func (m *Model) renderPreview() string {
	text := review.Reconstruct(m.units, m.store.Decisions(), review.DecisionCurrent)

	rendered, err := RenderMarkdown(text, m.viewport.Width, m.opts.MarkdownStyle)
	if err != nil {
		m.log.Warn().Err(err).Msg("markdown preview failed, falling back to plain text")
		return styles.TextStyle.Render(text)
	}
	return rendered
}

func (m *Model) renderBody() string {
	var b strings.Builder
	m.unitOffsets = make(map[int]int, len(m.modified))
	lineNo := 0

	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		lineNo++
	}

	for i, u := range m.units {
		if u.Kind == review.BlockUnchanged {
			for _, line := range strings.Split(u.Value, "\n") {
				write("    " + styles.ContextLineStyle.Render(line))
			}
			continue
		}

		m.unitOffsets[i] = lineNo
		selected := m.currentIndex() == i
		for _, line := range m.renderModifiedUnit(i, u, selected) {
			write(line)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// renderModifiedUnit renders one actionable unit: a decision badge followed by
// the unit's diff lines, original side first.
func (m Model) renderModifiedUnit(index int, u review.Unit, selected bool) []string {
	marker := "  "
	if selected {
		marker = styles.CursorStyle.Render("> ")
	}

	lines := []string{marker + m.renderBadge(index)}

	gutter := func(prefix string, style lipgloss.Style, text string) string {
		return marker + style.Render(prefix+" ") + text
	}

	if len(u.Lines) > 0 {
		for _, p := range review.GroupParagraphs(u.Lines) {
			if p.IsEmpty {
				lines = append(lines, marker)
				continue
			}
			for _, line := range p.Lines {
				if !p.HasChanges {
					lines = append(lines, gutter(" ", styles.ContextLineStyle, styles.TextStyle.Render(line.Text())))
					continue
				}
				if line.Kind != review.LineAdded {
					lines = append(lines, gutter("-", styles.RemovedLineStyle, m.renderInline(line, review.SideOriginal)))
				}
				if line.Kind != review.LineRemoved {
					lines = append(lines, gutter("+", styles.AddedLineStyle, m.renderInline(line, review.SideModified)))
				}
			}
		}
		return lines
	}

	// No inline detail: fall back to the unit's whole-side values.
	if u.Original != nil {
		for _, line := range strings.Split(*u.Original, "\n") {
			lines = append(lines, gutter("-", styles.RemovedLineStyle, styles.RemovedLineStyle.Render(line)))
		}
	}
	if u.Modified != nil {
		for _, line := range strings.Split(*u.Modified, "\n") {
			lines = append(lines, gutter("+", styles.AddedLineStyle, styles.AddedLineStyle.Render(line)))
		}
	}
	return lines
}

// renderInline styles one side of a diff line, highlighting the changed
// tokens within it.
func (m Model) renderInline(line review.InlineLine, side review.Side) string {
	var b strings.Builder
	for _, tok := range line.Tokens {
		switch tok.Kind {
		case review.TokenEqual:
			b.WriteString(styles.TextStyle.Render(tok.Text))
		case review.TokenRemoved:
			if side == review.SideOriginal {
				b.WriteString(styles.RemovedTokenStyle.Render(tok.Text))
			}
		case review.TokenAdded:
			if side == review.SideModified {
				b.WriteString(styles.AddedTokenStyle.Render(tok.Text))
			}
		}
	}
	return b.String()
}

func (m Model) renderBadge(index int) string {
	switch m.store.Get(index) {
	case review.DecisionIncoming:
		return styles.IncomingBadgeStyle.Render("[incoming]")
	case review.DecisionCurrent:
		return styles.CurrentBadgeStyle.Render("[current]")
	default:
		return styles.PendingBadgeStyle.Render("[pending]")
	}
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render("redline")
	doc := styles.TextStyle.Render(m.opts.DocumentPath)
	arrow := styles.TextMutedStyle.Render(" <- ")
	proposal := styles.TextMutedStyle.Render(m.opts.ProposalPath)

	decided, total := m.store.Progress()
	progress := styles.TextPrimaryStyle.Render(fmt.Sprintf("%d/%d decided", decided, total))

	line := title + "  " + doc + arrow + proposal + "  " + progress
	if m.stale {
		line += "  " + styles.WarningStyle.Render("! document changed on disk")
	}
	if m.showPreview {
		line += "  " + styles.TextPrimaryStyle.Render("(preview)")
	}

	return line + "\n" + styles.TextMutedStyle.Render(strings.Repeat("─", max(m.width, 1)))
}

func (m Model) renderFooter() string {
	help := "a accept · x keep · u undo · j/k move · A/X all · U reset · p preview · enter apply · q quit"
	if m.showPreview {
		help = "esc close preview · enter apply · q quit"
	}

	status := ""
	if m.status != "" {
		status = styles.WarningStyle.Render(m.status)
	}

	return status + "\n" + styles.HelpStyle.Render(help)
}

// ensureCursorVisible scrolls the viewport so the focused unit's first line is
// on screen.
func (m *Model) ensureCursorVisible() {
	idx := m.currentIndex()
	if idx < 0 {
		return
	}
	offset, ok := m.unitOffsets[idx]
	if !ok {
		return
	}

	switch {
	case offset < m.viewport.YOffset:
		m.viewport.SetYOffset(offset)
	case offset >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(offset - m.viewport.Height + 1)
	}
}
