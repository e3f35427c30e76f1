package review

import "strings"

// Paragraph is a display-only grouping of a modified unit's inline lines.
// Paragraphs are recomputed on demand and never persisted.
type Paragraph struct {
	Lines      []InlineLine
	HasChanges bool
	IsEmpty    bool
}

// GroupParagraphs derives one paragraph per inline line, split at blank-line
// boundaries: a line whose trimmed text is empty becomes an empty paragraph
// carrying no lines. A paragraph has changes when its line was added or
// removed outright, or when any of its tokens differ.
//
// If no non-empty paragraph carries a change, the first non-empty one is
// forced to HasChanges=true so a modified unit always exposes at least one
// actionable paragraph, even when the token diff marked nothing.
func GroupParagraphs(lines []InlineLine) []Paragraph {
	paras := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		p := Paragraph{
			IsEmpty:    strings.TrimSpace(line.Text()) == "",
			HasChanges: line.Kind == LineAdded || line.Kind == LineRemoved || line.HasChangedTokens(),
		}
		if !p.IsEmpty {
			p.Lines = []InlineLine{line}
		}
		paras = append(paras, p)
	}
	forceFirstChange(paras)
	return paras
}

func forceFirstChange(paras []Paragraph) {
	first := -1
	for i := range paras {
		if paras[i].IsEmpty {
			continue
		}
		if paras[i].HasChanges {
			return
		}
		if first == -1 {
			first = i
		}
	}
	if first >= 0 {
		paras[first].HasChanges = true
	}
}
