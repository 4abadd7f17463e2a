package engine

// MaxCompare caps the side-by-side comparison selection.
const MaxCompare = 4

// ToggleMembership removes value from set if present, otherwise appends
// it. The result is always a new slice so reactive callers can rely on
// reference inequality for change detection.
func ToggleMembership(set []string, value string) []string {
	for i, s := range set {
		if s == value {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	return append(out, value)
}

// ToggleCompare is ToggleMembership with the comparison cap applied:
// toggling a new id into a full selection is a silent no-op.
func ToggleCompare(sel []string, id string) []string {
	if !containsString(sel, id) && len(sel) >= MaxCompare {
		out := make([]string, len(sel))
		copy(out, sel)
		return out
	}
	return ToggleMembership(sel, id)
}
