package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioUnits mirrors the diff of "A\nB\nC" against "A\nX\nC": one modified
// unit at index 1.
func scenarioUnits() []Unit {
	return []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockModified, Original: strptr("B"), Modified: strptr("X")},
		{Kind: BlockUnchanged, Value: "C"},
	}
}

func TestReconstruct_Decisions(t *testing.T) {
	tests := []struct {
		name      string
		decisions map[int]Decision
		def       Decision
		want      string
	}{
		{
			name:      "incoming takes modified text",
			decisions: map[int]Decision{1: DecisionIncoming},
			def:       DecisionCurrent,
			want:      "A\nX\nC",
		},
		{
			name:      "current keeps original text",
			decisions: map[int]Decision{1: DecisionCurrent},
			def:       DecisionIncoming,
			want:      "A\nB\nC",
		},
		{
			name:      "pending with current default",
			decisions: map[int]Decision{},
			def:       DecisionCurrent,
			want:      "A\nB\nC",
		},
		{
			name:      "pending with incoming default",
			decisions: map[int]Decision{},
			def:       DecisionIncoming,
			want:      "A\nX\nC",
		},
		{
			name:      "nil decision map",
			decisions: nil,
			def:       DecisionCurrent,
			want:      "A\nB\nC",
		},
		{
			name:      "invalid decision value resolves as current",
			decisions: map[int]Decision{1: Decision(42)},
			def:       DecisionIncoming,
			want:      "A\nB\nC",
		},
		{
			name:      "invalid default policy resolves as current",
			decisions: map[int]Decision{},
			def:       Decision(-3),
			want:      "A\nB\nC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconstruct(scenarioUnits(), tt.decisions, tt.def))
		})
	}
}

func TestReconstruct_DeletionAcceptedKeepsContent(t *testing.T) {
	// Accepting a deletion-only unit falls back to the original text rather
	// than leaving an empty gap.
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockModified, Original: strptr("B")},
	}

	got := Reconstruct(units, map[int]Decision{1: DecisionIncoming}, DecisionCurrent)

	assert.Equal(t, "A\nB", got)
}

func TestReconstruct_RejectedInsertionLeavesNoBlankLine(t *testing.T) {
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockModified, Modified: strptr("new")},
		{Kind: BlockUnchanged, Value: "B"},
	}

	got := Reconstruct(units, map[int]Decision{1: DecisionCurrent}, DecisionCurrent)

	assert.Equal(t, "A\nB", got)
}

func TestReconstruct_EmptyButPresentSides(t *testing.T) {
	// A present-but-empty side contributes an empty line; only an absent side
	// contributes nothing.
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockModified, Original: strptr(""), Modified: strptr("filled")},
		{Kind: BlockUnchanged, Value: "B"},
	}

	assert.Equal(t, "A\n\nB", Reconstruct(units, map[int]Decision{1: DecisionCurrent}, DecisionCurrent))
	assert.Equal(t, "A\nfilled\nB", Reconstruct(units, map[int]Decision{1: DecisionIncoming}, DecisionCurrent))
}

func TestReconstruct_Pure(t *testing.T) {
	units := scenarioUnits()
	decisions := map[int]Decision{1: DecisionIncoming}

	first := Reconstruct(units, decisions, DecisionCurrent)
	second := Reconstruct(units, decisions, DecisionCurrent)

	assert.Equal(t, first, second)
	// Inputs are not mutated.
	require.Len(t, decisions, 1)
	assert.Equal(t, "B", *units[1].Original)
}

func TestRenderSide(t *testing.T) {
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockModified, Original: strptr("B"), Modified: strptr("X")},
		{Kind: BlockModified, Modified: strptr("added")},
		{Kind: BlockModified, Original: strptr("removed")},
		{Kind: BlockUnchanged, Value: "C"},
	}

	assert.Equal(t, "A\nB\nremoved\nC", RenderSide(units, SideOriginal))
	assert.Equal(t, "A\nX\nadded\nC", RenderSide(units, SideModified))
}
