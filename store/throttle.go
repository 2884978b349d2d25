package store

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Throttle bounds concurrent store operations and their IO throughput.
// A nil Throttle imposes no limits.
type Throttle struct {
	sem     *semaphore.Weighted // nil if unlimited
	limiter *rate.Limiter       // nil if unlimited
	burst   int
}

// NewThrottle creates a Throttle allowing maxConcurrent simultaneous
// operations and bytesPerSec of IO throughput. Zero disables the respective
// limit.
func NewThrottle(maxConcurrent int64, bytesPerSec int) *Throttle {
	t := &Throttle{}
	if maxConcurrent > 0 {
		t.sem = semaphore.NewWeighted(maxConcurrent)
	}
	if bytesPerSec > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
		t.burst = bytesPerSec
	}
	return t
}

// Acquire blocks until an operation slot is available or ctx is canceled.
func (t *Throttle) Acquire(ctx context.Context) error {
	if t == nil || t.sem == nil {
		return nil
	}
	return t.sem.Acquire(ctx, 1)
}

// Release returns an operation slot.
func (t *Throttle) Release() {
	if t == nil || t.sem == nil {
		return
	}
	t.sem.Release(1)
}

// WaitIO blocks until n bytes of IO budget are available.
// Requests larger than the burst are satisfied in burst-sized chunks.
func (t *Throttle) WaitIO(ctx context.Context, n int) error {
	if t == nil || t.limiter == nil || n <= 0 {
		return nil
	}
	for n > 0 {
		chunk := n
		if chunk > t.burst {
			chunk = t.burst
		}
		if err := t.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
