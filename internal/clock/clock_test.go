package clock

import (
	"testing"
	"time"
)

func TestMock(t *testing.T) {
	var m Mock
	if epoch := time.Unix(0, 0); !m.Now().Equal(epoch) {
		t.Fatalf("zero mock: want %s, got %s", epoch, m.Now())
	}
	m.Advance(90 * time.Second)
	if want := time.Unix(90, 0); !m.Now().Equal(want) {
		t.Fatalf("after advance: want %s, got %s", want, m.Now())
	}

	when := time.Date(2017, 1, 1, 10, 0, 0, 0, time.UTC)
	n := NewMock(when)
	n.Advance(time.Hour)
	if want := when.Add(time.Hour); !n.Now().Equal(want) {
		t.Fatalf("new mock: want %s, got %s", want, n.Now())
	}
}

func TestSystem(t *testing.T) {
	c := System()
	before := time.Now()
	time.Sleep(time.Millisecond)
	if now := c.Now(); now.Before(before.Add(time.Millisecond)) {
		t.Fatalf("system clock did not move: %s -> %s", before, now)
	}
}
