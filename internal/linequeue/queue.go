package linequeue

import "sync"

// Queue is an unbounded FIFO of text lines. Producers are the per-job
// reader goroutines; the single consumer is the UI pump. Lines from
// concurrently running jobs interleave in arrival order; lines from one
// job keep their write order.
type Queue struct {
	mu    sync.Mutex
	lines []string
}

// New creates an empty queue
func New() *Queue {
	return &Queue{}
}

// Push appends one line to the queue
func (q *Queue) Push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
}

// Drain removes and returns all currently buffered lines in FIFO order.
// It returns nil when the queue is empty.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.lines) == 0 {
		return nil
	}
	drained := q.lines
	q.lines = nil
	return drained
}

// Len returns the number of currently buffered lines
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lines)
}
