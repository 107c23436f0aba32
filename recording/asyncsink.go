package recording

import (
	"context"
	"sync"
	"sync/atomic"
)

type asyncItem struct {
	entry   Record
	flushed chan struct{}
}

// AsyncSink moves writes off the caller's goroutine. Entries are queued in a
// bounded buffer and handed to the wrapped sink by a single worker. When the
// buffer is full the entry is dropped.
type AsyncSink struct {
	inner   Sink
	items   chan asyncItem
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewAsyncSink starts the worker. bufferSize must be positive.
func NewAsyncSink(inner Sink, bufferSize int) *AsyncSink {
	if bufferSize <= 0 {
		panic("buffer size must be positive")
	}

	s := &AsyncSink{
		inner: inner,
		items: make(chan asyncItem, bufferSize),
		done:  make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *AsyncSink) run() {
	defer close(s.done)

	for item := range s.items {
		if item.flushed != nil {
			s.inner.Flush()
			close(item.flushed)

			continue
		}

		s.inner.Write(item.entry)
	}

	s.inner.Flush()
}

// Write queues the entry without blocking.
func (s *AsyncSink) Write(e Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.dropped.Add(1)
		return
	}

	select {
	case s.items <- asyncItem{entry: e}:
	default:
		s.dropped.Add(1)
	}
}

// Flush waits until every entry queued before the call reached the wrapped
// sink, then flushes it.
func (s *AsyncSink) Flush() {
	s.mu.RLock()

	if s.closed {
		s.mu.RUnlock()
		<-s.done

		return
	}

	flushed := make(chan struct{})
	s.items <- asyncItem{flushed: flushed}
	s.mu.RUnlock()

	<-flushed
}

// Dropped returns how many entries were discarded.
func (s *AsyncSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops accepting entries and waits for the worker to drain the queue
// or for ctx to end, whichever comes first.
func (s *AsyncSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.items)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
