package threads

import (
	"context"
	"sync"
)

// ThreadPool runs a fixed number of tasks concurrently, at most size at a
// time, each task a TaskFunction run in its own goroutine. Unlike
// Threads.Start, which starts every
// thread at once, ThreadPool gates admission with a semaphore so a batch of
// work larger than size doesn't spawn unbounded goroutines.
type ThreadPool struct {
	size  int
	tasks []TaskFunction

	mutex sync.Mutex
}

// NewThreadPool creates a pool that runs at most size tasks at once. A
// size of zero or less is treated as one.
func NewThreadPool(size int) *ThreadPool {
	if size <= 0 {
		size = 1
	}
	return &ThreadPool{size: size}
}

// Add queues a task to run when Run is called. Safe to call before Run only;
// Run drains the queue it sees at call time.
func (p *ThreadPool) Add(task TaskFunction) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.tasks = append(p.tasks, task)
}

// Run starts every queued task, never more than size running at once, and
// waits for all of them to finish. It returns the first error encountered,
// if any, after every task has completed; errors from other tasks are
// otherwise discarded by design, since the caller logs per-task failures
// itself.
func (p *ThreadPool) Run(ctx context.Context) error {
	p.mutex.Lock()
	tasks := p.tasks
	p.tasks = nil
	p.mutex.Unlock()

	sem := make(chan struct{}, p.size)
	var wait sync.WaitGroup
	var mutex sync.Mutex
	var firstErr error

	for _, task := range tasks {
		task := task
		wait.Add(1)
		sem <- struct{}{}
		go func() {
			defer wait.Done()
			defer func() { <-sem }()

			if err := task(ctx); err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
			}
		}()
	}

	wait.Wait()
	return firstErr
}
