// Package env gives typed access to environment variables.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var truthy = []string{"1", "true", "t", "yes", "y"}

type Env struct {
	vars map[string]string
}

// New returns the environment of the current process.
func New() Env {
	vs := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vs[k] = v
		}
	}
	return From(vs)
}

// From returns an Env reading its variables from vs.
func From(vs map[string]string) Env {
	return Env{vars: vs}
}

func (e Env) StringOr(key, fallback string) string {
	if v, ok := e.vars[key]; ok {
		return v
	}
	return fallback
}

// IntOr returns fallback when key is not set but fails on a malformed value.
func (e Env) IntOr(key string, fallback int) (int, error) {
	v, ok := e.vars[key]
	if !ok {
		return fallback, nil
	}
	return parseInt(key, v)
}

func (e Env) BoolOr(key string, fallback bool) bool {
	v, ok := e.vars[key]
	if !ok {
		return fallback
	}
	return isTruthy(v)
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("environment variable %s: %q is not an integer", key, v)
	}
	return n, nil
}

func isTruthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, t := range truthy {
		if v == t {
			return true
		}
	}
	return false
}
