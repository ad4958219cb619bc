package core

import (
	"context"
	"log"
	"time"

	"github.com/automoto/merlinio-playground/config"
)

// Command is a key edge delivered to the loop from an input goroutine.
type Command struct {
	Action  config.ActionID
	Pressed bool
}

// GameLoop steps a session on a fixed ticker. Commands are applied between
// ticks on the loop goroutine, which is the only one touching the session.
type GameLoop struct {
	session  *Session
	tickRate int
	commands chan Command
}

func NewGameLoop(session *Session, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  session,
		tickRate: tickRate,
		commands: make(chan Command, 16),
	}
}

// Send hands a command to the loop. It reports false when the command was
// dropped because the loop is not keeping up.
func (g *GameLoop) Send(cmd Command) bool {
	select {
	case g.commands <- cmd:
		return true
	default:
		return false
	}
}

// Run steps the session until ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return nil
		case cmd := <-g.commands:
			g.apply(cmd)
		case <-ticker.C:
			g.session.Step()
		}
	}
}

func (g *GameLoop) apply(cmd Command) {
	if cmd.Pressed {
		g.session.Press(cmd.Action)
		return
	}
	g.session.Release(cmd.Action)
}
