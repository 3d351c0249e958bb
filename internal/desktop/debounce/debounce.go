// Package debounce coalesces bursts of calls per key: only the last call made within the
// delay window runs, once the key has been quiet for the whole delay.
package debounce

import (
	"sync"
	"time"
)

type Timer interface {
	Stop() bool
}

// Scheduler runs f after d on its own goroutine. time.AfterFunc in production.
type Scheduler func(d time.Duration, f func()) Timer

func AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type entry struct {
	fn    func()
	timer Timer
	gen   uint64
}

type Keyed[K comparable] struct {
	mu       sync.Mutex
	delay    time.Duration
	schedule Scheduler
	pending  map[K]*entry
	gen      uint64
}

func NewKeyed[K comparable](delay time.Duration, schedule Scheduler) *Keyed[K] {
	if schedule == nil {
		schedule = AfterFunc
	}
	return &Keyed[K]{
		delay:    delay,
		schedule: schedule,
		pending:  make(map[K]*entry),
	}
}

// Trigger (re)starts the quiet period for key; fn replaces any call still pending for it.
func (k *Keyed[K]) Trigger(key K, fn func()) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if e, ok := k.pending[key]; ok {
		e.timer.Stop()
	}

	k.gen++
	gen := k.gen
	e := &entry{fn: fn, gen: gen}
	k.pending[key] = e
	e.timer = k.schedule(k.delay, func() { k.fire(key, gen) })
}

func (k *Keyed[K]) fire(key K, gen uint64) {
	k.mu.Lock()
	e, ok := k.pending[key]
	// таймер мог сработать уже после Stop: смотрим на поколение
	if !ok || e.gen != gen {
		k.mu.Unlock()
		return
	}
	delete(k.pending, key)
	k.mu.Unlock()

	e.fn()
}

// Cancel drops the pending call for key. Reports whether there was one.
func (k *Keyed[K]) Cancel(key K) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(k.pending, key)
	return true
}

func (k *Keyed[K]) CancelAll() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for key, e := range k.pending {
		e.timer.Stop()
		delete(k.pending, key)
	}
}

// Flush runs every pending call now, on the caller's goroutine.
func (k *Keyed[K]) Flush() {
	k.mu.Lock()
	fns := make([]func(), 0, len(k.pending))
	for key, e := range k.pending {
		e.timer.Stop()
		fns = append(fns, e.fn)
		delete(k.pending, key)
	}
	k.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Scheduled reports whether a call for key is waiting to fire.
func (k *Keyed[K]) Scheduled(key K) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.pending[key]
	return ok
}

func (k *Keyed[K]) Pending() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.pending)
}
