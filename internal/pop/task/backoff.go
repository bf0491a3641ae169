package task

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// MaxAttempts bounds how many times a task body runs.
	MaxAttempts = 10
	// BackoffUnit scales the quadratic wait between attempts.
	BackoffUnit = 10 * time.Second
)

// Delay returns the wait before attempt number attempt (counting from 1).
func Delay(attempt int, unit time.Duration) time.Duration {
	return time.Duration(attempt*attempt) * unit
}

// quadraticBackOff yields Delay(2), Delay(3), ... for successive retries.
type quadraticBackOff struct {
	unit    time.Duration
	retries int
}

var _ backoff.BackOff = (*quadraticBackOff)(nil)

func newQuadraticBackOff(unit time.Duration) *quadraticBackOff {
	return &quadraticBackOff{unit: unit}
}

func (b *quadraticBackOff) NextBackOff() time.Duration {
	b.retries++
	return Delay(b.retries+1, b.unit)
}

func (b *quadraticBackOff) Reset() {
	b.retries = 0
}
