package realtime

import "time"

// backoff computes capped exponential reconnect delays. It is indexed by the
// number of failed attempts already consumed, so the delay sequence restarts
// from the base whenever the attempt counter is reset on a successful open.
type backoff struct {
	base time.Duration
	max  time.Duration
}

// delay returns the wait before the reconnect that follows failure number
// attempt: base for attempt 0, doubling per attempt, capped at max.
func (b backoff) delay(attempt int) time.Duration {
	d := b.base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.max {
			return b.max
		}
	}
	if d > b.max {
		d = b.max
	}
	return d
}
