package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlocks_PassThrough(t *testing.T) {
	blocks := []Block{
		UnchangedBlock("A\nB"),
		{Kind: BlockModified, Original: strptr("old"), Modified: strptr("new")},
	}

	units := SplitBlocks(blocks)

	require.Len(t, units, 2)
	assert.Equal(t, BlockUnchanged, units[0].Kind)
	assert.Equal(t, "A\nB", units[0].Value)
	// Whole-block granularity is kept when there is no inline detail.
	assert.Equal(t, BlockModified, units[1].Kind)
	assert.Equal(t, "old", *units[1].Original)
	assert.Equal(t, "new", *units[1].Modified)
}

func TestSplitBlocks_OneUnitPerLine(t *testing.T) {
	block := Block{
		Kind: BlockModified,
		Lines: []InlineLine{
			{Kind: LineUnchanged, Tokens: []Token{{Text: "same", Kind: TokenEqual}}},
			{Kind: LineAdded, Tokens: []Token{{Text: "new line", Kind: TokenAdded}}},
			{Kind: LineRemoved, Tokens: []Token{{Text: "gone", Kind: TokenRemoved}}},
			{Kind: LineMixed, Tokens: []Token{
				{Text: "keep ", Kind: TokenEqual},
				{Text: "old", Kind: TokenRemoved},
				{Text: "new", Kind: TokenAdded},
			}},
		},
	}

	units := SplitBlocks([]Block{block})
	require.Len(t, units, 4)

	unchanged := units[0]
	assert.Equal(t, BlockUnchanged, unchanged.Kind)
	assert.Equal(t, "same", unchanged.Value)

	added := units[1]
	assert.Equal(t, BlockModified, added.Kind)
	assert.Nil(t, added.Original)
	require.NotNil(t, added.Modified)
	assert.Equal(t, "new line", *added.Modified)
	require.Len(t, added.Lines, 1)

	removed := units[2]
	require.NotNil(t, removed.Original)
	assert.Equal(t, "gone", *removed.Original)
	assert.Nil(t, removed.Modified)

	mixed := units[3]
	require.NotNil(t, mixed.Original)
	require.NotNil(t, mixed.Modified)
	assert.Equal(t, "keep old", *mixed.Original)
	assert.Equal(t, "keep new", *mixed.Modified)
}

func TestSplitBlocks_EmptyLineTexts(t *testing.T) {
	// An added blank line has a present-but-empty modified side, which must
	// stay distinguishable from an absent side.
	block := Block{
		Kind: BlockModified,
		Lines: []InlineLine{
			{Kind: LineAdded, Tokens: []Token{{Text: "", Kind: TokenAdded}}},
		},
	}

	units := SplitBlocks([]Block{block})
	require.Len(t, units, 1)
	assert.Nil(t, units[0].Original)
	require.NotNil(t, units[0].Modified)
	assert.Equal(t, "", *units[0].Modified)
}

func TestMergeUnits(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		want  int // expected unit count after merging
	}{
		{
			name: "adjacent unchanged collapse",
			units: []Unit{
				{Kind: BlockUnchanged, Value: "A"},
				{Kind: BlockUnchanged, Value: "B"},
				{Kind: BlockUnchanged, Value: "C"},
			},
			want: 1,
		},
		{
			name: "modified units break runs",
			units: []Unit{
				{Kind: BlockUnchanged, Value: "A"},
				{Kind: BlockModified, Original: strptr("B"), Modified: strptr("X")},
				{Kind: BlockUnchanged, Value: "C"},
			},
			want: 3,
		},
		{
			name:  "empty input",
			units: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeUnits(tt.units)
			assert.Len(t, merged, tt.want)
		})
	}
}

func TestMergeUnits_JoinsWithLineBreak(t *testing.T) {
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockUnchanged, Value: "B"},
	}

	merged := MergeUnits(units)

	require.Len(t, merged, 1)
	assert.Equal(t, "A\nB", merged[0].Value)
}

func TestMergeUnits_Invariance(t *testing.T) {
	// Merging must not change either document interpretation, nor the set of
	// modified units.
	units := []Unit{
		{Kind: BlockUnchanged, Value: "A"},
		{Kind: BlockUnchanged, Value: "B"},
		{Kind: BlockModified, Original: strptr("C"), Modified: strptr("X")},
		{Kind: BlockUnchanged, Value: "D"},
		{Kind: BlockUnchanged, Value: "E"},
		{Kind: BlockUnchanged, Value: "F"},
		{Kind: BlockModified, Modified: strptr("G")},
	}

	merged := MergeUnits(units)

	assert.Equal(t, RenderSide(units, SideOriginal), RenderSide(merged, SideOriginal))
	assert.Equal(t, RenderSide(units, SideModified), RenderSide(merged, SideModified))

	countModified := func(us []Unit) int {
		n := 0
		for _, u := range us {
			if u.Kind == BlockModified {
				n++
			}
		}
		return n
	}
	assert.Equal(t, countModified(units), countModified(merged))
}
