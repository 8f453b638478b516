package main

import (
	"crypto/md5"
	"io"
	"log"
	"os"

	"github.com/busoc/periods"
)

// writeOutput hands print a writer on file, or on stdout when file is empty,
// and logs the md5 of what print wrote.
func writeOutput(file string, print func(io.Writer)) error {
	var (
		w      io.Writer
		digest = md5.New()
	)
	switch f, err := os.Create(file); {
	case err == nil:
		defer f.Close()
		w = io.MultiWriter(f, digest)
	case err != nil && file == "":
		file = "stdout"
		w = io.MultiWriter(digest, os.Stdout)
	default:
		return checkError(err, nil)
	}
	print(w)
	log.Printf("md5 %s: %x", file, digest.Sum(nil))
	return nil
}

func writeResult(file, label string, ps []periods.Period, utc bool) error {
	return writeOutput(file, func(w io.Writer) {
		printHeader(w)
		total := printPeriods(w, label, ps, utc)
		printTotal(w, label, len(ps), total)

		log.Printf("%s: %d period(s), total time: %s", label, len(ps), total)
	})
}

func writeList(file string, sets []periodSet, utc bool) error {
	return writeOutput(file, func(w io.Writer) {
		ListSets(w, sets, utc)
	})
}
