package review

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ComputeDiff computes the block-level diff between two documents, with
// token-level inline detail for every changed line pair.
//
// The documents are diffed line by line: each distinct line is encoded as a
// single rune so diffmatchpatch operates on whole lines, which keeps the
// block boundaries exact regardless of trailing newlines. Runs of equal lines
// become unchanged blocks; each run of removed and inserted lines becomes one
// modified block whose lines are paired in order and diffed again at
// character level for the inline tokens.
//
// The result satisfies the reconstructability contract: joining all blocks'
// original interpretation with "\n" yields original, and the modified
// interpretation yields modified.
func ComputeDiff(original, modified string) []Block {
	origLines := strings.Split(original, "\n")
	modLines := strings.Split(modified, "\n")

	enc := newLineEncoder()
	e1 := enc.encode(origLines)
	e2 := enc.encode(modLines)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(e1, e2, false)

	var (
		blocks   []Block
		del, ins []string
	)
	flush := func() {
		if len(del) == 0 && len(ins) == 0 {
			return
		}
		blocks = append(blocks, modifiedBlock(dmp, del, ins))
		del, ins = nil, nil
	}

	for _, d := range diffs {
		lines := enc.decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			blocks = append(blocks, UnchangedBlock(strings.Join(lines, "\n")))
		case diffmatchpatch.DiffDelete:
			del = append(del, lines...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, lines...)
		}
	}
	flush()

	return blocks
}

// modifiedBlock builds one modified block from a run of removed and inserted
// lines. Lines are paired in order: each pair gets a character-level inline
// diff, and the unpaired tail becomes pure removals or additions.
func modifiedBlock(dmp *diffmatchpatch.DiffMatchPatch, del, ins []string) Block {
	paired := min(len(del), len(ins))

	lines := make([]InlineLine, 0, len(del)+len(ins)-paired)
	for i := range paired {
		lines = append(lines, inlineLine(dmp, del[i], ins[i]))
	}
	for _, text := range del[paired:] {
		lines = append(lines, InlineLine{
			Kind:   LineRemoved,
			Tokens: []Token{{Text: text, Kind: TokenRemoved}},
		})
	}
	for _, text := range ins[paired:] {
		lines = append(lines, InlineLine{
			Kind:   LineAdded,
			Tokens: []Token{{Text: text, Kind: TokenAdded}},
		})
	}

	b := Block{Kind: BlockModified, Lines: lines}
	if len(del) > 0 {
		b.Original = strptr(strings.Join(del, "\n"))
	}
	if len(ins) > 0 {
		b.Modified = strptr(strings.Join(ins, "\n"))
	}
	return b
}

// inlineLine diffs one paired line at character level. A pair never becomes
// LineAdded or LineRemoved, even when one side is empty: both sides exist, so
// both renderings must survive the split.
func inlineLine(dmp *diffmatchpatch.DiffMatchPatch, oldLine, newLine string) InlineLine {
	if oldLine == newLine {
		return InlineLine{
			Kind:   LineUnchanged,
			Tokens: []Token{{Text: oldLine, Kind: TokenEqual}},
		}
	}

	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	tokens := make([]Token, 0, len(diffs))
	for _, d := range diffs {
		tokens = append(tokens, Token{Text: d.Text, Kind: tokenKind(d.Type)})
	}
	return InlineLine{Kind: LineMixed, Tokens: tokens}
}

func tokenKind(op diffmatchpatch.Operation) TokenKind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return TokenAdded
	case diffmatchpatch.DiffDelete:
		return TokenRemoved
	default:
		return TokenEqual
	}
}

// lineEncoder maps whole lines to runes so the line-level diff is exact: one
// rune is one line, with no trailing-newline ambiguity. Runes in the
// surrogate range are skipped because they cannot round-trip through a Go
// string.
type lineEncoder struct {
	runes map[string]rune
	lines map[rune]string
	next  rune
}

func newLineEncoder() *lineEncoder {
	return &lineEncoder{
		runes: make(map[string]rune),
		lines: make(map[rune]string),
		next:  1,
	}
}

func (e *lineEncoder) encode(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		r, ok := e.runes[line]
		if !ok {
			r = e.next
			e.next++
			if e.next == 0xD800 {
				e.next = 0xE000
			}
			e.runes[line] = r
			e.lines[r] = line
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (e *lineEncoder) decode(encoded string) []string {
	lines := make([]string, 0, len(encoded))
	for _, r := range encoded {
		lines = append(lines, e.lines[r])
	}
	return lines
}
