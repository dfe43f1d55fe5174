// Package playhead follows the current position of an external media
// player and reports it to the editor so the caption under the playhead
// can be highlighted.
package playhead

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Source answers position queries, typically by asking a media player
// for its current time in seconds.
type Source interface {
	Position(ctx context.Context) (float64, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (float64, error)

func (f SourceFunc) Position(ctx context.Context) (float64, error) { return f(ctx) }

// DefaultInterval is how often the player is polled.
const DefaultInterval = 500 * time.Millisecond

// Tracker polls a Source at a fixed interval. Responses can arrive out
// of order when the source is slow, so each poll carries a generation
// number and only the latest generation is delivered to the callback.
type Tracker struct {
	src        Source
	limiter    *rate.Limiter
	gen        atomic.Uint64
	onPosition func(seconds float64)
}

// New builds a tracker. interval <= 0 falls back to DefaultInterval.
// onPosition is invoked from the polling goroutine.
func New(src Source, interval time.Duration, onPosition func(float64)) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		src:        src,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		onPosition: onPosition,
	}
}

// Run polls until the context is cancelled. It always returns the
// context's error.
func (t *Tracker) Run(ctx context.Context) error {
	for {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
		gen := t.gen.Add(1)
		go t.poll(ctx, gen)
	}
}

// Poll issues a single position query synchronously. Useful when the
// caller drives its own schedule.
func (t *Tracker) Poll(ctx context.Context) {
	t.poll(ctx, t.gen.Add(1))
}

func (t *Tracker) poll(ctx context.Context, gen uint64) {
	pos, err := t.src.Position(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Debug("playhead query failed", "err", err)
		}
		return
	}
	// Drop the response if a newer poll has been issued meanwhile.
	if t.gen.Load() != gen {
		return
	}
	if t.onPosition != nil {
		t.onPosition(pos)
	}
}
