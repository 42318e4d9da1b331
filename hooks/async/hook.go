// usage:
//
//	raw := loghooks.New(zaplog.New(logger), loghooks.Options{
//	    DecodeFailedEvery: 10, // sample logs: ~every 10th decode failure
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := codee.Observe("user", jsoncodec.JSON[User]{}, hooks)
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/codee"
)

// Hooks forwards events to inner from worker goroutines. Events are dropped
// when the queue is full so codec calls never block on a slow sink.
type Hooks struct {
	inner codee.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	mu     sync.RWMutex // orders try against Close
	closed bool
}

var _ codee.Hooks = (*Hooks)(nil)

func New(inner codee.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
// Events reported after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) EncodeFailed(c string, err error) { h.try(func() { h.inner.EncodeFailed(c, err) }) }
func (h *Hooks) DecodeFailed(c string, n int, err error) {
	h.try(func() { h.inner.DecodeFailed(c, n, err) })
}
func (h *Hooks) PayloadRejected(c string, n, limit int) {
	h.try(func() { h.inner.PayloadRejected(c, n, limit) })
}
func (h *Hooks) VersionMismatch(c string, got, want uint16) {
	h.try(func() { h.inner.VersionMismatch(c, got, want) })
}
