package periods

import (
	"sort"
)

// Merge collapses the periods of all the given sets into the minimal
// ascending list of periods that are neither overlapping nor adjacent:
// [a,b) and [b,c) merge into [a,c). Empty periods are dropped.
//
// Merge(ps) normalizes a single set, Merge(a, b) merges the concatenation of
// two sets.
func Merge(sets ...[]Period) []Period {
	ps := collect(sets)
	if len(ps) == 0 {
		return nil
	}
	sortPeriods(ps)

	var (
		rs  []Period
		cur = ps[0]
	)
	for _, p := range ps[1:] {
		if p.from.After(cur.to) {
			rs = append(rs, cur)
			cur = p
			continue
		}
		if p.to.After(cur.to) {
			cur.to = p.to
		}
	}
	return append(rs, cur)
}

// collect copies the non empty periods of sets into a private slice.
func collect(sets [][]Period) []Period {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	ps := make([]Period, 0, n)
	for _, s := range sets {
		for _, p := range s {
			if !p.IsEmpty() {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

func sortPeriods(ps []Period) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Compare(ps[j]) < 0 })
}
