package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/automoto/merlinio-playground/components"
	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/automoto/merlinio-playground/render/raster"
	"golang.org/x/sync/errgroup"
)

func main() {
	width := flag.Int("width", config.C.Width, "Arena width")
	height := flag.Int("height", config.C.Height, "Arena height")
	tickRate := flag.Int("tickrate", 600, "Simulation steps per second")
	maxTicks := flag.Int("ticks", 10000, "Stop after this many rendered frames")
	frame := flag.String("frame", "", "Write the final frame to this PNG file")
	debug := flag.Bool("debug", false, "Draw collision bodies")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.C.TickRate = *tickRate
	config.C.Debug = *debug

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *maxTicks, *frame); err != nil {
		log.Fatalf("Headless run failed: %v", err)
	}
}

func run(ctx context.Context, maxTicks int, frame string) error {
	r, err := raster.New(config.C.Width, config.C.Height, config.C.Debug)
	if err != nil {
		return err
	}

	w := newWatcher(r, maxTicks)
	session := core.NewSession(config.C, w)
	loop := core.NewGameLoop(session, config.C.TickRate)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return autopilot(gctx, loop, w.done)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	last := session.Snapshot()
	log.Printf("Session %s finished after %d frames: state=%s outcome=%s player=%d enemy=%d",
		session.ID(), r.Frames(), last.State, last.Overlay.Outcome, last.Player.Health, last.Enemy.Health)

	if frame != "" {
		if err := r.SavePNG(frame); err != nil {
			return err
		}
		log.Printf("Wrote final frame to %s", frame)
	}
	return nil
}

// autopilot starts the round and keeps the player firing until the round is
// decided.
func autopilot(ctx context.Context, loop *core.GameLoop, done <-chan struct{}) error {
	if !loop.Send(core.Command{Action: config.ActionStart, Pressed: true}) {
		return fmt.Errorf("start command dropped")
	}

	ticker := time.NewTicker(time.Second / time.Duration(config.C.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case <-ticker.C:
			loop.Send(core.Command{Action: config.ActionFire, Pressed: true})
		}
	}
}

// watcher forwards frames to the raster renderer and signals once the round
// offers a respawn or the frame budget runs out.
type watcher struct {
	*raster.Renderer
	limit int
	done  chan struct{}
	once  sync.Once
}

func newWatcher(r *raster.Renderer, limit int) *watcher {
	return &watcher{Renderer: r, limit: limit, done: make(chan struct{})}
}

func (w *watcher) Render(snap core.Snapshot) {
	w.Renderer.Render(snap)
	if snap.State == components.RoundAwaitingRespawn || w.Frames() >= w.limit {
		w.once.Do(func() { close(w.done) })
	}
}
