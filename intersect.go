package periods

import (
	"sort"
	"time"
)

// Intersect returns the span shared by a and b. The boolean is false when
// they do not overlap, including when they only touch.
func Intersect(a, b Period) (Period, bool) {
	rs := IntersectSets([]Period{a}, []Period{b})
	if len(rs) == 0 {
		return Period{}, false
	}
	return rs[0], true
}

// IntersectSets returns the windows of time where both a and b have an
// active period. Each set is expected to hold no overlapping periods;
// sanitize them with Merge first if they might.
func IntersectSets(a, b []Period) []Period {
	return IntersectAll(a, b)
}

// IntersectAll returns the windows of time where every one of the given sets
// has an active period. Like IntersectSets, each set must hold no
// overlapping periods.
func IntersectAll(sets ...[]Period) []Period {
	switch len(sets) {
	case 0:
		return nil
	case 1:
		return Merge(sets[0])
	}
	for _, s := range sets {
		if len(s) == 0 {
			return nil
		}
	}
	return sweep(len(sets), sets)
}

type delta struct {
	When time.Time
	Step int
}

// sweep walks the bounds of all periods in order, counting the active ones,
// and reports the windows where at least want periods are active.
func sweep(want int, sets [][]Period) []Period {
	var ds []delta
	for _, s := range sets {
		for _, p := range s {
			if p.IsEmpty() {
				continue
			}
			ds = append(ds, delta{When: p.from, Step: 1}, delta{When: p.to, Step: -1})
		}
	}
	// at the same instant, ends come first: [a,b) and [b,c) never overlap.
	sort.Slice(ds, func(i, j int) bool {
		if c := ds[i].When.Compare(ds[j].When); c != 0 {
			return c < 0
		}
		return ds[i].Step < ds[j].Step
	})

	var (
		rs     []Period
		count  int
		open   bool
		starts time.Time
	)
	for _, d := range ds {
		count += d.Step
		switch {
		case count == want && !open:
			open, starts = true, d.When
			if n := len(rs); n > 0 && rs[n-1].to.Equal(starts) {
				starts = rs[n-1].from
				rs = rs[:n-1]
			}
		case count < want && open:
			open = false
			rs = appendPeriod(rs, starts, d.When)
		}
	}
	return rs
}
