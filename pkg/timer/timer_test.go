package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(&Config{Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNew_nilConfig(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected an empty manager, got %d timers", m.Len())
	}
}

func TestManager_BackgroundLoop(t *testing.T) {
	m := newTestManager(t)

	var timeoutFires, intervalFires atomic.Int32
	m.Timeout(func() { timeoutFires.Add(1) }, 30*time.Millisecond)
	m.Interval(func() { intervalFires.Add(1) }, 50*time.Millisecond)

	m.Start(10 * time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	m.Stop()

	if got := timeoutFires.Load(); got != 1 {
		t.Fatalf("expected the timeout to fire exactly once, got %d", got)
	}
	if got := intervalFires.Load(); got < 3 {
		t.Fatalf("expected the interval to fire at least 3 times, got %d", got)
	}
}

func TestManager_Repeat_invalidCount(t *testing.T) {
	m := newTestManager(t)

	if id := m.Repeat(func() {}, time.Second, 0); id != Invalid {
		t.Fatalf("expected Invalid for count 0, got %d", id)
	}
	if id := m.Repeat(func() {}, time.Second, -3); id != Invalid {
		t.Fatalf("expected Invalid for a negative count, got %d", id)
	}
	if m.Len() != 0 {
		t.Fatalf("expected no timers, got %d", m.Len())
	}
}

func TestManager_CancelBeforeFire(t *testing.T) {
	m := newTestManager(t)

	var fires atomic.Int32
	id := m.Timeout(func() { fires.Add(1) }, 50*time.Millisecond)
	m.Cancel(id)
	m.Cancel(Invalid) // ignored

	m.Start(10 * time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	m.Stop()

	if got := fires.Load(); got != 0 {
		t.Fatalf("expected a cancelled timer not to fire, got %d", got)
	}
	if m.Len() != 0 {
		t.Fatalf("expected the cancelled timer to be reaped, got %d", m.Len())
	}
}

func TestManager_StartIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	var fires atomic.Int32
	m.Interval(func() { fires.Add(1) }, 20*time.Millisecond)

	m.Start(10 * time.Millisecond)
	m.Start(10 * time.Millisecond) // no second loop
	time.Sleep(110 * time.Millisecond)
	m.Stop()

	final := fires.Load()
	time.Sleep(50 * time.Millisecond)
	if fires.Load() != final {
		t.Fatal("a loop kept ticking after Stop")
	}
}

func TestManager_StopWithoutStart(t *testing.T) {
	m := newTestManager(t)
	m.Stop() // no-op
	m.Wait() // no-op
}

func TestManager_Wait(t *testing.T) {
	m := newTestManager(t)
	m.Start(10 * time.Millisecond)

	go func() {
		time.Sleep(50 * time.Millisecond)
		m.Stop()
	}()

	waited := make(chan struct{})
	go func() {
		m.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after Stop")
	}
}

func TestManager_ManualTick(t *testing.T) {
	m := newTestManager(t)

	var fires atomic.Int32
	m.Timeout(func() { fires.Add(1) }, 10*time.Millisecond)

	m.Tick()
	if got := fires.Load(); got != 0 {
		t.Fatalf("expected no fire before the delay, got %d", got)
	}

	time.Sleep(20 * time.Millisecond)
	m.Tick()
	if got := fires.Load(); got != 1 {
		t.Fatalf("expected one fire, got %d", got)
	}
	if m.Len() != 0 {
		t.Fatalf("expected the timer to be reaped, got %d", m.Len())
	}
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t)

	m.Interval(func() {}, time.Second)
	m.Timeout(func() {}, time.Second)
	m.Clear()

	if m.Len() != 0 {
		t.Fatalf("expected no timers after Clear, got %d", m.Len())
	}
}
