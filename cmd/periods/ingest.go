package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/busoc/periods"
)

const (
	PeriodComment = '#'
	PeriodComma   = ','
	Stdin         = "-"
)

type periodSet struct {
	Label   string
	Periods []periods.Period
}

// inputSets returns the sets of the configuration followed by one set per
// file. Standard input is used when there is nothing else to read; it can
// back one set at most.
func inputSets(s *Settings, files []string) ([]Set, error) {
	sets := append([]Set{}, s.Sets...)
	for _, f := range files {
		label := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		sets = append(sets, Set{Label: label, File: f})
	}
	if len(sets) == 0 {
		sets = append(sets, Set{Label: "stdin", File: Stdin})
	}
	var stdin int
	for i := range sets {
		if sets[i].Label == "" {
			sets[i].Label = "set" + strconv.Itoa(i+1)
		}
		if sets[i].File == Stdin {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, badUsage(fmt.Sprintf("%d sets read from standard input, at most one allowed", stdin))
	}
	return sets, nil
}

// loadSets reads at most workers sets at the same time. The first failure
// cancels the loads not yet started.
func loadSets(ctx context.Context, sets []Set, workers int) ([]periodSet, error) {
	var (
		rs    = make([]periodSet, len(sets))
		g, sc = errgroup.WithContext(ctx)
	)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range sets {
		i, s := i, sets[i]
		g.Go(func() error {
			if err := sc.Err(); err != nil {
				return err
			}
			ps, err := s.load()
			if err != nil {
				return err
			}
			rs[i] = periodSet{Label: s.Label, Periods: ps}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s Set) load() ([]periods.Period, error) {
	ps := make([]periods.Period, 0, len(s.Periods))
	for i, v := range s.Periods {
		p, err := periods.Parse(v)
		if err != nil {
			return nil, periodBadSyntax(s.Label, i, err)
		}
		ps = append(ps, p)
	}
	switch s.File {
	case "":
		return ps, nil
	case Stdin:
		vs, err := readPeriods(os.Stdin, s.Label)
		return append(ps, vs...), err
	}
	r, err := os.Open(s.File)
	if err != nil {
		return nil, checkError(err, nil)
	}
	defer r.Close()

	vs, err := readPeriods(r, s.File)
	return append(ps, vs...), err
}

func readPeriods(r io.Reader, name string) ([]periods.Period, error) {
	rs := csv.NewReader(r)
	rs.Comment = PeriodComment
	rs.Comma = PeriodComma
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	var ps []periods.Period
	for i := 0; ; i++ {
		row, err := rs.Read()
		if row == nil && err == io.EOF {
			break
		}
		if err != nil {
			return nil, checkError(err, nil)
		}
		if len(row) < 2 {
			return nil, missingColumns(name, i, len(row))
		}
		from, err := periods.ParseTime(row[0])
		if err != nil {
			return nil, timeBadSyntax(name, i, row[0])
		}
		to, err := periods.ParseTime(row[1])
		if err != nil {
			return nil, timeBadSyntax(name, i, row[1])
		}
		p, err := periods.New(from, to)
		if err != nil {
			return nil, periodBadSyntax(name, i, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// Filter drops the periods that end at or before t.
func (s periodSet) Filter(t time.Time) periodSet {
	if t.IsZero() {
		return s
	}
	ps := make([]periods.Period, 0, len(s.Periods))
	for _, p := range s.Periods {
		if p.To().After(t) {
			ps = append(ps, p)
		}
	}
	return periodSet{Label: s.Label, Periods: ps}
}
