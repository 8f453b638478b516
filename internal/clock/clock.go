// Package clock abstracts the passing of time so that code reading the
// current instant can be driven by a fake clock in tests.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System returns the clock of the running machine.
func System() Clock {
	return system{}
}

type system struct{}

func (system) Now() time.Time {
	return time.Now()
}

// Mock is a Clock that only moves when Advance is called. The zero value
// starts at the Unix epoch.
type Mock struct {
	mu   sync.Mutex
	when time.Time
	init bool
}

func NewMock(when time.Time) *Mock {
	return &Mock{when: when, init: true}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return m.when
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	m.when = m.when.Add(d)
}

func (m *Mock) reset() {
	if !m.init {
		m.when, m.init = time.Unix(0, 0).UTC(), true
	}
}
