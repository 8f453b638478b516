package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/toml"

	"github.com/busoc/periods"
	"github.com/busoc/periods/internal/clock"
	"github.com/busoc/periods/internal/env"
)

const (
	OpList      = "list"
	OpMerge     = "merge"
	OpIntersect = "intersect"
	OpSubtract  = "subtract"
)

const DefaultWorkers = 4

type Set struct {
	Label   string   `toml:"label"`
	File    string   `toml:"file"`
	Periods []string `toml:"periods"`
}

type Settings struct {
	Operation string   `toml:"operation"`
	Output    string   `toml:"output"`
	BaseTime  string   `toml:"base-time"`
	Workers   int      `toml:"workers"`
	UTC       bool     `toml:"utc"`
	Cuts      []string `toml:"cut"`
	Sets      []Set    `toml:"set"`

	Config      string `toml:"-"`
	ShowVersion bool   `toml:"-"`
}

// Default returns the settings derived from the environment.
func Default(e env.Env) (*Settings, error) {
	workers, err := e.IntOr("PERIODS_WORKERS", DefaultWorkers)
	if err != nil {
		return nil, badUsage(err.Error())
	}
	s := Settings{
		Workers: workers,
		UTC:     e.BoolOr("PERIODS_UTC", false),
		Config:  e.StringOr("PERIODS_CONFIG", ""),
	}
	return &s, nil
}

// Load decodes file into s. Relative files of the sets are resolved against
// the directory of file.
func (s *Settings) Load(file string) error {
	if file == "" {
		return nil
	}
	r, err := os.Open(file)
	if err != nil {
		return checkError(err, nil)
	}
	defer r.Close()

	if err := toml.Decode(r, s); err != nil {
		return badUsage(fmt.Sprintf("invalid configuration file: %v", err))
	}
	s.Config = file

	dir := filepath.Dir(file)
	for i, set := range s.Sets {
		if set.File == "" || set.File == Stdin || filepath.IsAbs(set.File) {
			continue
		}
		s.Sets[i].File = filepath.Join(dir, set.File)
	}
	return nil
}

// Base resolves the base time against c. An empty base time is the zero
// time and filters nothing.
func (s *Settings) Base(c clock.Clock) (time.Time, error) {
	switch b := strings.TrimSpace(s.BaseTime); {
	case b == "":
		return time.Time{}, nil
	case b == "now":
		return c.Now(), nil
	default:
		if d, err := time.ParseDuration(b); err == nil {
			return c.Now().Add(d), nil
		}
		t, err := periods.ParseTime(b)
		if err != nil {
			return t, badUsage("base-time format invalid")
		}
		return t, nil
	}
}

func (s *Settings) CutPeriods() ([]periods.Period, error) {
	ps := make([]periods.Period, 0, len(s.Cuts))
	for _, c := range s.Cuts {
		p, err := periods.Parse(c)
		if err != nil {
			return nil, badUsage(fmt.Sprintf("cut: %v", err))
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func dumpSettings(s *Settings, base time.Time) {
	log.Printf("%s-%s (build: %s)", Program, Version, BuildTime)
	if s.Config != "" {
		log.Printf("settings: configuration file: %s", s.Config)
	}
	log.Printf("settings: operation: %s", s.Operation)
	if !base.IsZero() {
		log.Printf("settings: base time: %s", base.Format(time.RFC3339))
	}
	log.Printf("settings: workers: %d", s.Workers)
	for _, c := range s.Cuts {
		log.Printf("settings: cut: %s", c)
	}
}

// periodList collects the periods given by a repeated flag.
type periodList []string

func (p *periodList) String() string {
	return strings.Join(*p, ",")
}

func (p *periodList) Set(s string) error {
	if _, err := periods.Parse(s); err != nil {
		return err
	}
	*p = append(*p, s)
	return nil
}
