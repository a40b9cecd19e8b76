// Package metrics provides the single piece of ambient instrumentation
// the SSL compound carries: a count of records dissected from a stream.
// This is not the pretty-printing/observability layer spec.md excludes
// (§1) -- it is a plain counter a caller can read after a Dissect call,
// nothing more.
//
// Adapted from the teacher's counter package (a BGP session's sent/
// received message counters); repurposed here to count dissected
// records instead of session events.
package metrics

// Counter is a 64-bit monotonically increasing count.
type Counter struct {
	count uint64
}

// New returns a zeroed Counter.
func New() *Counter {
	return &Counter{}
}

// Increment adds one to the count.
func (c *Counter) Increment() {
	c.count++
}

// Value returns the current count.
func (c *Counter) Value() uint64 {
	return c.count
}

// Reset zeroes the count.
func (c *Counter) Reset() {
	c.count = 0
}
