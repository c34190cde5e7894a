package driver

import "time"

// Clock is an injectable wall-clock source (spec §9: "the driver reads
// the host's clock through an injectable time source so tests can supply
// deterministic timing"). Live mode uses SystemClock; tests and batch
// runs that need determinism supply their own.
type Clock interface {
	Now() time.Time
}

// SystemClock wraps time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock is a deterministic Clock a test can step manually.
type FixedClock struct {
	t time.Time
}

func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{t: t} }

func (c *FixedClock) Now() time.Time { return c.t }

// Advance moves the fixed clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
