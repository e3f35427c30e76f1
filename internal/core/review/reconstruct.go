package review

import "strings"

// Reconstruct resolves every unit against the decision map and joins the
// resolved lines with "\n" into the final document text. def selects how
// still-pending units resolve; any value other than DecisionIncoming is
// treated as DecisionCurrent, so the conservative keep-current policy also
// absorbs invalid input.
//
// Reconstruct is pure: it never mutates its arguments and identical inputs
// always produce identical output.
func Reconstruct(units []Unit, decisions map[int]Decision, def Decision) string {
	parts := make([]string, 0, len(units))
	for i, u := range units {
		if u.Kind != BlockModified {
			parts = append(parts, u.Value)
			continue
		}
		if text, ok := resolveUnit(u, decisions[i], def); ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func resolveUnit(u Unit, d, def Decision) (string, bool) {
	switch d {
	case DecisionIncoming:
		return resolveIncoming(u)
	case DecisionCurrent:
		return resolveCurrent(u)
	case DecisionPending:
		if def == DecisionIncoming {
			return resolveIncoming(u)
		}
		return resolveCurrent(u)
	default:
		// Unknown decision values resolve conservatively.
		return resolveCurrent(u)
	}
}

// resolveIncoming returns the modified text, falling back to the original for
// a pure deletion: accepting a deletion-only unit must never silently drop
// content. A unit with neither side contributes no line at all.
func resolveIncoming(u Unit) (string, bool) {
	if u.Modified != nil {
		return *u.Modified, true
	}
	if u.Original != nil {
		return *u.Original, true
	}
	return "", false
}

// resolveCurrent returns the original text. A unit that only exists on the
// incoming side contributes no line, so rejecting a pure insertion leaves no
// blank line behind.
func resolveCurrent(u Unit) (string, bool) {
	if u.Original != nil {
		return *u.Original, true
	}
	return "", false
}

// RenderSide renders the full document text for one side of the diff. The
// original side of the unit sequence equals the original document and the
// modified side the modified document, for any diff satisfying the
// reconstructability contract.
func RenderSide(units []Unit, side Side) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.Kind != BlockModified {
			parts = append(parts, u.Value)
			continue
		}
		v := u.Original
		if side == SideModified {
			v = u.Modified
		}
		if v != nil {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, "\n")
}
