// Package periods implements an algebra over half-open time spans: merging
// overlapping or adjacent periods, subtracting a period from a set of
// periods and intersecting period sets.
//
// Every function is pure. Inputs are never modified and results are freshly
// allocated, sorted ascending by start time.
package periods

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
	"time"
)

// Layouts accepted by ParseTime, tried in order. Bounds without a zone are
// read as UTC.
var Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Period is the half-open span [from, to). A Period is immutable; its bounds
// always satisfy from <= to.
type Period struct {
	from, to time.Time
}

// New returns the period [from, to). It fails with ErrInvalidPeriod when
// from is after to.
func New(from, to time.Time) (Period, error) {
	if from.After(to) {
		return Period{}, invalidBounds(from, to)
	}
	return Period{from: from, to: to}, nil
}

// Must is like New but panics if the bounds are invalid.
func Must(from, to time.Time) Period {
	p, err := New(from, to)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads a period written as "from/to".
func Parse(s string) (Period, error) {
	x := strings.Index(s, "/")
	if x < 0 {
		return Period{}, invalidSyntax(s, nil)
	}
	from, err := ParseTime(s[:x])
	if err != nil {
		return Period{}, invalidSyntax(s, err)
	}
	to, err := ParseTime(s[x+1:])
	if err != nil {
		return Period{}, invalidSyntax(s, err)
	}
	return New(from, to)
}

// ParseTime reads a single bound using the first matching entry of Layouts.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q does not match any known layout", s)
}

func (p Period) From() time.Time {
	return p.from
}

func (p Period) To() time.Time {
	return p.to
}

// Duration saturates like time.Time.Sub for spans longer than ~292 years.
func (p Period) Duration() time.Duration {
	return p.to.Sub(p.from)
}

// Length returns the number of whole units between the bounds of p. It fails
// with ErrOverflow only when that number does not fit in an int64.
func (p Period) Length(unit time.Duration) (int64, error) {
	if unit <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUnit, unit)
	}
	d := p.to.Sub(p.from)
	if p.from.Add(d).Equal(p.to) {
		return int64(d / unit), nil
	}
	// the span does not fit in a time.Duration: count its nanoseconds on 128 bits
	var (
		secs = uint64(p.to.Unix()) - uint64(p.from.Unix())
		nsec = int64(p.to.Nanosecond()) - int64(p.from.Nanosecond())
	)
	if nsec < 0 {
		secs--
		nsec += int64(time.Second)
	}
	hi, lo := bits.Mul64(secs, uint64(time.Second))
	lo, carry := bits.Add64(lo, uint64(nsec), 0)
	hi += carry
	if hi >= uint64(unit) {
		return 0, fmt.Errorf("%w: %s in units of %s", ErrOverflow, p, unit)
	}
	n, _ := bits.Div64(hi, lo, uint64(unit))
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s in units of %s", ErrOverflow, p, unit)
	}
	return int64(n), nil
}

// IsEmpty reports whether p covers no instant at all.
func (p Period) IsEmpty() bool {
	return p.from.Equal(p.to)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.from) && t.Before(p.to)
}

// Overlaps reports whether p and o share at least one instant. Periods that
// only touch do not overlap.
func (p Period) Overlaps(o Period) bool {
	return later(p.from, o.from).Before(earlier(p.to, o.to))
}

func (p Period) Equal(o Period) bool {
	return p.from.Equal(o.from) && p.to.Equal(o.to)
}

// Compare orders periods by start, then by end.
func (p Period) Compare(o Period) int {
	if c := p.from.Compare(o.from); c != 0 {
		return c
	}
	return p.to.Compare(o.to)
}

func (p Period) String() string {
	return p.from.Format(time.RFC3339Nano) + "/" + p.to.Format(time.RFC3339Nano)
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err == nil {
		*p = v
	}
	return err
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func later(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
