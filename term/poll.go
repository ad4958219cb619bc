package term

import (
	"context"
	"errors"
	"time"

	"github.com/automoto/merlinio-playground/core"
	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by Poll when the user quits. It cancels the sibling
// goroutines of an errgroup.
var ErrQuit = errors.New("quit requested")

// Sender accepts commands for the game loop.
type Sender interface {
	Send(cmd core.Command) bool
}

// Poll forwards terminal key events to out until ctx is done or the user
// quits.
func Poll(ctx context.Context, screen tcell.Screen, out Sender, in *Input) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(in.hold / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmds, quit := in.Key(ev, time.Now())
				if quit {
					return ErrQuit
				}
				for _, cmd := range cmds {
					out.Send(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			for _, cmd := range in.Expire(now) {
				out.Send(cmd)
			}
		}
	}
}
