package playhead

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu  sync.Mutex
	pos float64
	err error
}

func (s *fakeSource) Position(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos, s.err
}

func (s *fakeSource) set(pos float64) {
	s.mu.Lock()
	s.pos = pos
	s.mu.Unlock()
}

func TestPoll_DeliversPosition(t *testing.T) {
	src := &fakeSource{pos: 12.5}

	var (
		mu  sync.Mutex
		got []float64
	)
	tr := New(src, time.Millisecond, func(pos float64) {
		mu.Lock()
		got = append(got, pos)
		mu.Unlock()
	})

	tr.Poll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != 12.5 {
		t.Errorf("positions = %v, want [12.5]", got)
	}
}

func TestPoll_ErrorIsDropped(t *testing.T) {
	src := &fakeSource{err: errors.New("player gone")}

	called := false
	tr := New(src, time.Millisecond, func(float64) { called = true })
	tr.Poll(context.Background())

	if called {
		t.Error("callback must not fire on a failed query")
	}
}

func TestPoll_StaleGenerationDropped(t *testing.T) {
	src := &fakeSource{pos: 1}

	var (
		mu  sync.Mutex
		got []float64
	)
	tr := New(src, time.Millisecond, func(pos float64) {
		mu.Lock()
		got = append(got, pos)
		mu.Unlock()
	})

	// Claim a generation, then advance past it before delivering: the
	// response for the old generation must be discarded.
	stale := tr.gen.Add(1)
	tr.gen.Add(1)
	tr.poll(context.Background(), stale)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 0 {
		t.Errorf("stale response delivered: %v", got)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	src := &fakeSource{pos: 3}

	var (
		mu    sync.Mutex
		count int
	)
	tr := New(src, time.Millisecond, func(float64) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if count == 0 {
		t.Error("expected at least one position delivery while running")
	}
}

func TestNew_DefaultInterval(t *testing.T) {
	tr := New(&fakeSource{}, 0, nil)
	if tr.limiter == nil {
		t.Fatal("limiter not initialized")
	}
	// A nil callback must not panic.
	tr.Poll(context.Background())
}
