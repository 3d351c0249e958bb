package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 500 * time.Millisecond

func TestKeyed_OnlyLastCallRuns(t *testing.T) {
	clock := NewFakeClock()
	d := NewKeyed[string](delay, clock.Schedule)

	var got []int
	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger("a", func() { got = append(got, i) })
		clock.Advance(100 * time.Millisecond)
	}

	assert.Empty(t, got, "таймер перезапускается на каждом вызове")
	assert.Equal(t, 1, d.Pending())
	assert.True(t, d.Scheduled("a"))

	clock.Advance(delay)
	assert.Equal(t, []int{5}, got)
	assert.Zero(t, d.Pending())
	assert.False(t, d.Scheduled("a"))
	assert.Zero(t, clock.Active())
}

func TestKeyed_KeysAreIndependent(t *testing.T) {
	clock := NewFakeClock()
	d := NewKeyed[int](delay, clock.Schedule)

	var got []string
	d.Trigger(1, func() { got = append(got, "one") })
	d.Trigger(2, func() { got = append(got, "two") })
	d.Trigger(1, func() { got = append(got, "one-last") })

	clock.Advance(delay)
	assert.ElementsMatch(t, []string{"two", "one-last"}, got)
}

func TestKeyed_Cancel(t *testing.T) {
	clock := NewFakeClock()
	d := NewKeyed[string](delay, clock.Schedule)

	var fired bool
	d.Trigger("a", func() { fired = true })

	assert.True(t, d.Cancel("a"))
	assert.False(t, d.Cancel("a"))

	clock.Advance(delay)
	assert.False(t, fired)
}

func TestKeyed_CancelAll(t *testing.T) {
	clock := NewFakeClock()
	d := NewKeyed[string](delay, clock.Schedule)

	var fired int
	d.Trigger("a", func() { fired++ })
	d.Trigger("b", func() { fired++ })
	d.CancelAll()

	clock.Advance(delay)
	assert.Zero(t, fired)
	assert.Zero(t, d.Pending())
}

func TestKeyed_Flush(t *testing.T) {
	clock := NewFakeClock()
	d := NewKeyed[string](delay, clock.Schedule)

	var got []string
	d.Trigger("a", func() { got = append(got, "a") })
	d.Trigger("b", func() { got = append(got, "b") })

	d.Flush()
	assert.ElementsMatch(t, []string{"a", "b"}, got)

	// после Flush таймеры уже ничего не вызывают
	clock.Advance(delay)
	assert.Len(t, got, 2)
}

func TestKeyed_RealTimer(t *testing.T) {
	d := NewKeyed[string](10*time.Millisecond, nil)

	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)
	for i := 0; i < 3; i++ {
		d.Trigger("a", func() {
			calls.Add(1)
			wg.Done()
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "debounced call did not run")
	}

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
