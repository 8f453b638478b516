package periods

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntersect(t *testing.T) {
	data := []struct {
		A, B Period
		Want Period
		Ok   bool
	}{
		{
			A:    period("2017-01-01", "2017-02-01"),
			B:    period("2017-01-15", "2017-02-15"),
			Want: period("2017-01-15", "2017-02-01"),
			Ok:   true,
		},
		{
			A: period("2017-01-01", "2017-02-01"),
			B: period("2017-02-01", "2017-02-15"),
		},
		{
			A:    period("2017-01-01", "2017-02-01"),
			B:    period("2017-01-10", "2017-01-11"),
			Want: period("2017-01-10", "2017-01-11"),
			Ok:   true,
		},
		{
			A: period("2017-01-01", "2017-02-01"),
			B: period("2017-01-10", "2017-01-10"),
		},
		{
			A: period("2017-01-01", "2017-01-02"),
			B: period("2017-03-01", "2017-03-02"),
		},
	}
	for _, d := range data {
		for _, args := range [][2]Period{{d.A, d.B}, {d.B, d.A}} {
			got, ok := Intersect(args[0], args[1])
			if ok != d.Ok {
				t.Errorf("%s & %s: want overlap %t, got %t", args[0], args[1], d.Ok, ok)
				continue
			}
			if diff := cmp.Diff(d.Want, got); diff != "" {
				t.Errorf("%s & %s: unexpected intersection (-want, +got):\n%s", args[0], args[1], diff)
			}
		}
	}
}

func TestIntersectSets(t *testing.T) {
	data := []struct {
		Name string
		A, B []Period
		Want []Period
	}{
		{
			Name: "interleaved",
			A: []Period{
				period("2017-01-01", "2017-02-01"),
				period("2017-02-15", "2017-02-16"),
				period("2017-02-20", "2017-02-25"),
			},
			B: []Period{
				period("2017-01-02", "2017-01-10"),
				period("2017-01-20", "2017-02-25"),
			},
			Want: []Period{
				period("2017-01-02", "2017-01-10"),
				period("2017-01-20", "2017-02-01"),
				period("2017-02-15", "2017-02-16"),
				period("2017-02-20", "2017-02-25"),
			},
		},
		{
			Name: "windows",
			A: []Period{
				period("2017-01-01", "2017-02-01"),
				period("2017-02-20", "2017-02-25"),
			},
			B: []Period{
				period("2017-01-02", "2017-01-10"),
				period("2017-01-20", "2017-02-25"),
			},
			Want: []Period{
				period("2017-01-02", "2017-01-10"),
				period("2017-01-20", "2017-02-01"),
				period("2017-02-20", "2017-02-25"),
			},
		},
		{
			Name: "empty",
			A:    []Period{period("2017-01-01", "2017-02-01")},
		},
		{
			Name: "disjoint",
			A:    []Period{period("2017-01-01", "2017-02-01")},
			B:    []Period{period("2017-02-01", "2017-03-01")},
		},
		{
			Name: "identical",
			A: []Period{
				period("2017-01-01", "2017-02-01"),
				period("2017-03-01", "2017-04-01"),
			},
			B: []Period{
				period("2017-01-01", "2017-02-01"),
				period("2017-03-01", "2017-04-01"),
			},
			Want: []Period{
				period("2017-01-01", "2017-02-01"),
				period("2017-03-01", "2017-04-01"),
			},
		},
		{
			Name: "adjacent windows",
			A: []Period{
				period("2017-01-01", "2017-01-10"),
				period("2017-01-10", "2017-01-20"),
			},
			B:    []Period{period("2017-01-05", "2017-01-15")},
			Want: []Period{period("2017-01-05", "2017-01-15")},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			if diff := cmp.Diff(d.Want, IntersectSets(d.A, d.B)); diff != "" {
				t.Errorf("a & b: unexpected result (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(d.Want, IntersectSets(d.B, d.A)); diff != "" {
				t.Errorf("b & a: unexpected result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIntersectAll(t *testing.T) {
	a := []Period{period("2017-01-01", "2017-01-31")}
	b := []Period{
		period("2017-01-05", "2017-01-10"),
		period("2017-01-20", "2017-02-10"),
	}
	c := []Period{
		period("2016-12-01", "2017-01-07"),
		period("2017-01-25", "2017-01-26"),
	}
	want := []Period{
		period("2017-01-05", "2017-01-07"),
		period("2017-01-25", "2017-01-26"),
	}
	if diff := cmp.Diff(want, IntersectAll(a, b, c)); diff != "" {
		t.Fatalf("unexpected result (-want, +got):\n%s", diff)
	}
	if got := IntersectAll(); got != nil {
		t.Fatalf("no sets: want nil, got %v", got)
	}
	if got := IntersectAll(a, b, nil); got != nil {
		t.Fatalf("empty set: want nil, got %v", got)
	}
	if diff := cmp.Diff(Merge(b), IntersectAll(b)); diff != "" {
		t.Fatalf("single set (-want, +got):\n%s", diff)
	}
}

func TestIntersectProperties(t *testing.T) {
	rs := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := Merge(randomPeriods(rs, rs.Intn(6)))
		b := Merge(randomPeriods(rs, rs.Intn(6)))

		ab, ba := IntersectSets(a, b), IntersectSets(b, a)
		if diff := cmp.Diff(ab, ba); diff != "" {
			t.Fatalf("intersection of %v and %v is not symmetric (-ab, +ba):\n%s", a, b, diff)
		}
		for h := 0; h < gridSize; h++ {
			at := gridTime(h)
			if want := covered(a, at) && covered(b, at); covered(ab, at) != want {
				t.Fatalf("%v & %v = %v: wrong coverage at %s", a, b, ab, at)
			}
		}
		for j := 1; j < len(ab); j++ {
			if !ab[j-1].to.Before(ab[j].from) {
				t.Fatalf("windows %s and %s are not maximal", ab[j-1], ab[j])
			}
		}
	}
}
