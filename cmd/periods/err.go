package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/busoc/periods"
)

const (
	EINVAL = 22
)

const (
	GenericErrCode = 5000 + iota
	NoInputErrCode
)

type Error struct {
	Cause error
	Code  int
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Exit(e error) {
	if e == nil {
		return
	}
	fmt.Fprintln(os.Stderr, e)
	var err *Error
	if errors.As(e, &err) {
		os.Exit(err.Code)
	}
	os.Exit(GenericErrCode)
}

func checkError(err, parent error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *Error:
		return e
	case *csv.ParseError:
		return badUsage(e.Error())
	case *os.PathError:
		return checkError(e.Err, err)
	case syscall.Errno:
		if parent != nil {
			err = parent
		}
		return &Error{Cause: err, Code: int(e)}
	default:
		if errors.Is(err, periods.ErrInvalidPeriod) {
			return &Error{Cause: err, Code: EINVAL}
		}
		return err
	}
}

func badUsage(n string) error {
	e := Error{
		Cause: errors.New(n),
		Code:  EINVAL,
	}
	return &e
}

func timeBadSyntax(file string, i int, v string) error {
	e := Error{
		Cause: fmt.Errorf("%s: time badly formatted at row %d (%s)", file, i+1, v),
		Code:  EINVAL,
	}
	return &e
}

func periodBadSyntax(file string, i int, err error) error {
	e := Error{
		Cause: fmt.Errorf("%s: row %d: %w", file, i+1, err),
		Code:  EINVAL,
	}
	return &e
}

func missingColumns(file string, i, n int) error {
	e := Error{
		Cause: fmt.Errorf("%s: row %d: expected at least 2 columns, got %d", file, i+1, n),
		Code:  EINVAL,
	}
	return &e
}

func noInput(op string) error {
	e := Error{
		Cause: fmt.Errorf("%s: no period set given", op),
		Code:  NoInputErrCode,
	}
	return &e
}
