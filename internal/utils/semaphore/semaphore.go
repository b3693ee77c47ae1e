package semaphore

import (
	"context"
	"errors"
	"time"
)

var ErrAcquireTimeout = errors.New("semaphore acquire timeout exceeded")

// Semaphore bounds how many callers hold a slot at once.
type Semaphore struct {
	semaCh chan struct{}
}

func New(maxHolders uint64) *Semaphore {
	return &Semaphore{
		semaCh: make(chan struct{}, maxHolders),
	}
}

// Acquire blocks until a slot frees up or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) AcquireWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Acquire(ctx); err != nil {
		return ErrAcquireTimeout
	}
	return nil
}

func (s *Semaphore) Release() {
	<-s.semaCh
}

// inUse reports the number of held slots.
func (s *Semaphore) inUse() int {
	return len(s.semaCh)
}
