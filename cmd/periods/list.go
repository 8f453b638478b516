package main

import (
	"fmt"
	"io"
	"time"

	"github.com/busoc/periods"
)

const (
	rowpat  = "%3d | %-12s | %-20s | %-20s | %s\n"
	hdrpat  = "%3s | %-12s | %-20s | %-20s | %s\n"
	timefmt = "2006-01-02T15:04:05"
)

func printHeader(w io.Writer) {
	fmt.Fprintf(w, hdrpat, "#", "LABEL", "FROM", "TO", "DURATION")
}

// printPeriods writes one row per period and returns the total time covered
// by the rows.
func printPeriods(w io.Writer, label string, ps []periods.Period, utc bool) time.Duration {
	var total time.Duration
	for i, p := range ps {
		from, to := p.From(), p.To()
		if utc {
			from, to = from.UTC(), to.UTC()
		}
		fmt.Fprintf(w, rowpat, i, label, from.Format(timefmt), to.Format(timefmt), p.Duration())
		total += p.Duration()
	}
	return total
}

func printTotal(w io.Writer, label string, count int, total time.Duration) {
	fmt.Fprintf(w, "%s total time: %s (%d)\n", label, total, count)
}

func ListSets(w io.Writer, sets []periodSet, utc bool) {
	printHeader(w)
	for _, s := range sets {
		total := printPeriods(w, s.Label, s.Periods, utc)
		printTotal(w, s.Label, len(s.Periods), total)
	}
}
