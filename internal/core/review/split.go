package review

// SplitBlocks decomposes blocks into review units. Unchanged blocks and
// modified blocks without inline detail pass through as-is; every inline line
// of a detailed modified block becomes its own unit, so each line can be
// accepted or rejected independently.
//
// The split preserves both document interpretations: joining the units'
// original side reconstructs the original document, and the modified side the
// modified document.
func SplitBlocks(blocks []Block) []Unit {
	units := make([]Unit, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind != BlockModified || len(b.Lines) == 0 {
			units = append(units, Unit{
				Kind:     b.Kind,
				Value:    b.Value,
				Original: b.Original,
				Modified: b.Modified,
				Lines:    b.Lines,
			})
			continue
		}
		for _, line := range b.Lines {
			units = append(units, splitLine(line))
		}
	}
	return units
}

func splitLine(line InlineLine) Unit {
	switch line.Kind {
	case LineUnchanged:
		// Original and modified render identically for an unchanged line.
		return Unit{Kind: BlockUnchanged, Value: RenderLine(line, SideOriginal)}
	case LineAdded:
		return Unit{
			Kind:     BlockModified,
			Modified: strptr(RenderLine(line, SideModified)),
			Lines:    []InlineLine{line},
		}
	case LineRemoved:
		return Unit{
			Kind:     BlockModified,
			Original: strptr(RenderLine(line, SideOriginal)),
			Lines:    []InlineLine{line},
		}
	default:
		// Mixed lines (and any future kind) keep both sides.
		return Unit{
			Kind:     BlockModified,
			Original: strptr(RenderLine(line, SideOriginal)),
			Modified: strptr(RenderLine(line, SideModified)),
			Lines:    []InlineLine{line},
		}
	}
}

// MergeUnits recombines adjacent unchanged units into one, joining their
// values with a line break. This only reduces how many unchanged indices
// exist; modified units and the reconstructed text are untouched. Single
// pass, order preserving.
func MergeUnits(units []Unit) []Unit {
	merged := make([]Unit, 0, len(units))
	for _, u := range units {
		if u.Kind == BlockUnchanged && len(merged) > 0 && merged[len(merged)-1].Kind == BlockUnchanged {
			prev := &merged[len(merged)-1]
			prev.Value = prev.Value + "\n" + u.Value
			continue
		}
		merged = append(merged, u)
	}
	return merged
}
