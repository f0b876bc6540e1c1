package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var calls []string

	// N calls inside the window must trigger exactly one invocation,
	// carrying the arguments of the last call.
	for _, arg := range []string{"m", "mu", "mug"} {
		arg := arg
		d.Call(func() {
			mu.Lock()
			calls = append(calls, arg)
			mu.Unlock()
		})
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"mug"}, calls)
}

func TestDebouncer_SeparateBurstsEachFire(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	count := 0
	bump := func() {
		mu.Lock()
		count++
		mu.Unlock()
	}

	d.Call(bump)
	time.Sleep(60 * time.Millisecond)
	d.Call(bump)
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, count)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	fired := false
	d.Call(func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)
}

func TestNewDebouncer_DefaultWindow(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultWindow, d.window)
}
