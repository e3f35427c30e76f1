package review

// BlockKind discriminates diff blocks and review units.
type BlockKind int

const (
	BlockUnchanged BlockKind = iota
	BlockModified
)

// Block is one contiguous region of the block-level diff. Blocks are ordered;
// joining every block's original interpretation with line breaks yields the
// original document, and the modified interpretation yields the modified
// document.
type Block struct {
	Kind BlockKind

	// Value holds the text of an unchanged block: one or more identical
	// lines joined by "\n".
	Value string

	// Original and Modified are whole-region fallbacks for modified blocks.
	// A nil pointer means the side does not exist at all: a pure insertion
	// has no original, a pure deletion has no modified. That is distinct
	// from a present-but-empty line.
	Original *string
	Modified *string

	// Lines is the inline token-level diff of a modified block. When empty,
	// the block is only decidable at whole-region granularity.
	Lines []InlineLine
}

// Unit is the line-level element a reviewer decides on. It has the same shape
// as Block, but after splitting a modified unit holds at most one inline
// line. A unit is addressed by its position in the unit sequence; indices are
// only stable for the lifetime of a single review session.
type Unit struct {
	Kind     BlockKind
	Value    string
	Original *string
	Modified *string
	Lines    []InlineLine
}

// UnchangedBlock returns a block for text identical in both versions.
func UnchangedBlock(value string) Block {
	return Block{Kind: BlockUnchanged, Value: value}
}

func strptr(s string) *string { return &s }
