package periods

import (
	"time"
)

// Subtract removes cut from subject. The result holds 0, 1 or 2 periods:
// nothing when cut covers subject, two periods when cut lies strictly inside
// subject, one period otherwise. A cut that lies outside subject leaves it
// unchanged.
func Subtract(subject, cut Period) []Period {
	if subject.IsEmpty() {
		return nil
	}
	if cut.IsEmpty() {
		return []Period{subject}
	}
	var rs []Period
	if cut.from.After(subject.from) {
		rs = appendPeriod(rs, subject.from, earlier(cut.from, subject.to))
	}
	if cut.to.Before(subject.to) {
		rs = appendPeriod(rs, later(cut.to, subject.from), subject.to)
	}
	return rs
}

// SubtractAll removes cut from every period of ps, keeping the order of ps.
func SubtractAll(ps []Period, cut Period) []Period {
	var rs []Period
	for _, p := range ps {
		rs = append(rs, Subtract(p, cut)...)
	}
	return rs
}

// Difference removes every period of cuts from ps, keeping the order of ps.
func Difference(ps, cuts []Period) []Period {
	rs := collect([][]Period{ps})
	for _, c := range cuts {
		if len(rs) == 0 {
			break
		}
		rs = SubtractAll(rs, c)
	}
	return rs
}

// appendPeriod appends [from, to) to rs unless it is empty.
func appendPeriod(rs []Period, from, to time.Time) []Period {
	if from.Before(to) {
		rs = append(rs, Period{from: from, to: to})
	}
	return rs
}
