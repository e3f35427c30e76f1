// Package review implements the diff decomposition and reconstruction engine:
// it turns a block-level diff with inline token detail into line-level review
// units, groups a unit's lines into display paragraphs, tracks one decision
// per unit, and deterministically rebuilds the final document text from those
// decisions.
//
// The package is synchronous and allocation-only: no function here performs
// I/O, and no function returns an error. Malformed input degrades to the most
// conservative textual choice instead of failing.
package review

import "strings"

// TokenKind classifies one span of an inline (character-level) diff.
type TokenKind int

const (
	TokenEqual   TokenKind = iota // present in both versions
	TokenAdded                    // present only in the modified version
	TokenRemoved                  // present only in the original version
)

// Token is one span of an inline diff line.
type Token struct {
	Text string
	Kind TokenKind
}

// LineKind classifies one line of an inline diff.
type LineKind int

const (
	LineUnchanged LineKind = iota // identical in both versions
	LineAdded                     // exists only in the modified version
	LineRemoved                   // exists only in the original version
	LineMixed                     // paired line with token-level edits
)

// InlineLine is a single line of the inline diff of a changed region.
type InlineLine struct {
	Kind   LineKind
	Tokens []Token
}

// Side selects which version of the document a line is rendered for.
type Side int

const (
	SideOriginal Side = iota
	SideModified
)

// RenderLine concatenates a line's token texts for one side of the diff.
// Added tokens are excluded from the original side and removed tokens from
// the modified side.
func RenderLine(line InlineLine, side Side) string {
	var b strings.Builder
	for _, tok := range line.Tokens {
		if side == SideOriginal && tok.Kind == TokenAdded {
			continue
		}
		if side == SideModified && tok.Kind == TokenRemoved {
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Text returns the full token text of the line, both sides included.
func (l InlineLine) Text() string {
	var b strings.Builder
	for _, tok := range l.Tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// HasChangedTokens reports whether any token in the line is an addition or a
// removal.
func (l InlineLine) HasChangedTokens() bool {
	for _, tok := range l.Tokens {
		if tok.Kind != TokenEqual {
			return true
		}
	}
	return false
}
