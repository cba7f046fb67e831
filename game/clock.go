package game

import (
	"context"
	"log"
	"time"
)

// Run drives the simulation clock: one select over the tick ticker and
// the intent channel, all on this goroutine. Intents interleave between
// ticks at arbitrary points; no two callbacks ever run in parallel, so
// the world needs no locking. Blocks until ctx is canceled or Stop is
// called.
func (e *Engine) Run(ctx context.Context) error {
	cfg := e.world.cfg
	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()
	log.Printf("simulation started: %.0fx%.0f %s world, tick %v, %d food",
		cfg.Width, cfg.Height, cfg.Topology, cfg.TickInterval, cfg.TargetFood)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.stop:
			return nil
		case in := <-e.intents:
			e.Apply(in)
		case <-ticker.C:
			e.step()
		}
	}
}

// Stop terminates Run.
func (e *Engine) Stop() { close(e.stop) }

// Post delivers an intent to the engine goroutine. Safe for concurrent
// use. If the engine is too far behind the intent is dropped; client
// intents are expected races and naturally idempotent on failure.
func (e *Engine) Post(in Intent) {
	select {
	case e.intents <- in:
	default:
		log.Printf("intent channel full, dropping %T", in)
	}
}
