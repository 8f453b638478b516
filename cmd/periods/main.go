package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/busoc/periods"
	"github.com/busoc/periods/internal/clock"
	"github.com/busoc/periods/internal/env"
)

const (
	Version   = "1.0.0"
	BuildTime = "2020-12-14 09:30:00"
	Program   = "periods"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(fmt.Sprintf("[%s-%s] ", Program, Version))

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
		os.Exit(2)
	}
}

func main() {
	s, files, err := configure(flag.CommandLine, os.Args[1:], env.New())
	if err != nil {
		Exit(err)
	}
	if s.ShowVersion {
		fmt.Fprintf(os.Stderr, "%s-%s (%s)\n", Program, Version, BuildTime)
		return
	}
	if s.Operation == "" {
		flag.Usage()
	}
	Exit(run(context.Background(), s, files, clock.System()))
}

// configure builds the settings from the environment, the configuration file
// and the command line, in increasing order of precedence. Cuts given on the
// command line are added to the ones of the file. It returns the files left
// on the command line after the operation.
func configure(fs *flag.FlagSet, args []string, e env.Env) (*Settings, []string, error) {
	var (
		cuts     periodList
		config   = fs.String("config", "", "load settings from a configuration file")
		baseTime = fs.String("base-time", "", "ignore periods ending before base time")
		output   = fs.String("output", "", "write result to file")
		workers  = fs.Int("workers", 0, "maximum number of files loaded concurrently")
		utc      = fs.Bool("utc", false, "print times in UTC")
		version  = fs.Bool("version", false, "print version and exit")
	)
	fs.Var(&cuts, "cut", "period to subtract")
	if err := fs.Parse(args); err != nil {
		return nil, nil, badUsage(err.Error())
	}

	s, err := Default(e)
	if err != nil {
		return nil, nil, err
	}
	if s.ShowVersion = *version; s.ShowVersion {
		return s, nil, nil
	}
	if *config != "" {
		s.Config = *config
	}
	if err := s.Load(s.Config); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-time":
			s.BaseTime = *baseTime
		case "output":
			s.Output = *output
		case "workers":
			s.Workers = *workers
		case "utc":
			s.UTC = *utc
		case "cut":
			s.Cuts = append(s.Cuts, cuts...)
		}
	})
	files := fs.Args()
	if len(files) > 0 {
		s.Operation, files = files[0], files[1:]
	}
	return s, files, nil
}

func run(ctx context.Context, s *Settings, files []string, c clock.Clock) error {
	base, err := s.Base(c)
	if err != nil {
		return err
	}
	cuts, err := s.CutPeriods()
	if err != nil {
		return err
	}
	if !isOperation(s.Operation) {
		return badUsage(fmt.Sprintf("unknown operation %q", s.Operation))
	}
	dumpSettings(s, base)

	inputs, err := inputSets(s, files)
	if err != nil {
		return err
	}
	sets, err := loadSets(ctx, inputs, s.Workers)
	if err != nil {
		return err
	}
	for i := range sets {
		sets[i] = sets[i].Filter(base)
		log.Printf("%s: %d period(s) loaded", sets[i].Label, len(sets[i].Periods))
	}
	if s.Operation == OpList {
		return writeList(s.Output, sets, s.UTC)
	}

	now := c.Now()
	ps, err := apply(s.Operation, sets, cuts)
	if err != nil {
		return err
	}
	log.Printf("%s of %d set(s) done in %s", s.Operation, len(sets), c.Now().Sub(now))
	return writeResult(s.Output, s.Operation, ps, s.UTC)
}

// apply runs one algebra operation over the loaded sets.
func apply(op string, sets []periodSet, cuts []periods.Period) ([]periods.Period, error) {
	if len(sets) == 0 {
		return nil, noInput(op)
	}
	all := make([][]periods.Period, 0, len(sets))
	for _, s := range sets {
		all = append(all, s.Periods)
	}
	switch op {
	case OpMerge:
		return periods.Merge(all...), nil
	case OpIntersect:
		for i := range all {
			all[i] = periods.Merge(all[i])
		}
		return periods.IntersectAll(all...), nil
	case OpSubtract:
		if len(cuts) == 0 {
			return nil, badUsage("subtract: no period to cut")
		}
		return periods.Difference(periods.Merge(all...), cuts), nil
	default:
		return nil, badUsage(fmt.Sprintf("unknown operation %q", op))
	}
}

func isOperation(op string) bool {
	switch op {
	case OpList, OpMerge, OpIntersect, OpSubtract:
		return true
	default:
		return false
	}
}
