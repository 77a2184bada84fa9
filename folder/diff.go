package folder

import "sort"

// Diff compares two file lists and reports which entries were added to and removed from
// previous to produce current. Inputs need not be sorted; outputs are sorted and
// deduplicated.
func Diff(previous, current []string) (added, removed []string) {
	prev := sortedUnique(previous)
	curr := sortedUnique(current)

	i, j := 0, 0
	for i < len(prev) && j < len(curr) {
		switch {
		case prev[i] == curr[j]:
			i++
			j++
		case prev[i] < curr[j]:
			removed = append(removed, prev[i])
			i++
		default:
			added = append(added, curr[j])
			j++
		}
	}
	removed = append(removed, prev[i:]...)
	added = append(added, curr[j:]...)
	return added, removed
}

func sortedUnique(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)

	n := 0
	for k, s := range out {
		if k > 0 && s == out[n-1] {
			continue
		}
		out[n] = s
		n++
	}
	return out[:n]
}
