package watch

import (
	"sync"
	"time"
)

// debouncer collapses bursts of calls sharing a key into one call fired
// after the key has been quiet for delay.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add (re)arms the timer for key. Calls after stopAndWait are dropped.
func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if prev, ok := d.timers[key]; ok && prev.Stop() {
		d.wg.Done()
	}

	var t *time.Timer
	d.wg.Add(1)
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fn()
		}
	})
	d.timers[key] = t
}

// stopAndWait cancels pending timers and waits up to timeout for the ones
// already firing. It reports whether everything finished in time.
func (d *debouncer) stopAndWait(timeout time.Duration) bool {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
