package threads

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestThreadPoolBoundsConcurrency(t *testing.T) {
	pool := NewThreadPool(2)

	var running int32
	var maxRunning int32
	var mutex sync.Mutex

	for i := 0; i < 10; i++ {
		pool.Add(func(ctx context.Context) error {
			n := atomic.AddInt32(&running, 1)
			mutex.Lock()
			if n > maxRunning {
				maxRunning = n
			}
			mutex.Unlock()
			atomic.AddInt32(&running, -1)
			return nil
		})
	}

	if err := pool.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if maxRunning > 2 {
		t.Errorf("max concurrent tasks %d, want <= 2", maxRunning)
	}
}

func TestThreadPoolReturnsFirstError(t *testing.T) {
	pool := NewThreadPool(1)
	pool.Add(func(ctx context.Context) error { return nil })
	pool.Add(func(ctx context.Context) error { return errTest })

	if err := pool.Run(context.Background()); err != errTest {
		t.Errorf("got %v, want errTest", err)
	}
}

var errTest = errTestError("boom")

type errTestError string

func (e errTestError) Error() string { return string(e) }
