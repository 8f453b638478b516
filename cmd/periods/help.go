package main

const helpText = `Period algebra tool

Usage: periods [options] <operation> [file...]

Operations:

  list      print every period set
  merge     merge the periods of all sets into non overlapping periods
  intersect merge each set then report the windows where all sets are active
  subtract  merge all sets then remove every period given with -cut

Input format:

every file given on the command line is one set of periods. A file is a CSV
file where each row describes one period:

- from  (inclusive start of the period)
- to    (exclusive end of the period)
- label (optional, ignored)

rows starting with # are comments. Times are written as RFC 3339
(2017-01-01T10:00:00+02:00), as YYYY-mm-ddTHH:MM:SS or as YYYY-mm-dd, the last
two being read as UTC.

if no file is given (neither on the command line nor in the configuration
file), periods reads a single set from its standard input.

Configuration file:

periods accepts via the "config" flag a configuration file in toml. Options
given on the command line take precedence over the ones of the file.

  - operation = operation to run when none is given on the command line
  - output    = file where the result is written
  - base-time = ignore periods ending at or before this time
  - workers   = maximum number of files loaded at the same time
  - utc       = print times in UTC
  - cut       = list of periods (from/to) to subtract

  [[set]] tables describe the period sets:
  - label   = name of the set
  - file    = CSV file with the periods of the set
  - periods = list of periods (from/to) of the set

Environment:

  PERIODS_CONFIG   configuration file used when -config is not given
  PERIODS_WORKERS  default value of -workers
  PERIODS_UTC      default value of -utc

Options:

  -config    FILE   load settings from a configuration file
  -cut       PERIOD subtract PERIOD (from/to) - can be repeated
  -base-time DATE   ignore periods ending at or before DATE. DATE can also be
                    "now" or a duration relative to now (-24h)
  -output    FILE   write the result to FILE
  -workers   N      load at most N files at the same time
  -utc              print times in UTC
  -version          print periods version and exit
  -help             print this message and exit

Examples:

# find when two rooms are both free
$ periods intersect room-a.csv room-b.csv

# remove a maintenance window from the availability of a team
$ periods -cut 2017-02-15/2017-02-16 subtract alice.csv bob.csv

# merge the periods read from another program, ignoring the past
$ export-bookings | periods -base-time now merge

# use a configuration file instead of command line options
$ periods -config /usr/local/etc/periods/availability.toml
`
