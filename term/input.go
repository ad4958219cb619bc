package term

import (
	"time"

	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeats but never releases. A move
// key counts as released once it has not repeated for the hold window.
const DefaultHold = 150 * time.Millisecond

type Input struct {
	hold time.Duration
	held map[config.ActionID]time.Time
}

func NewInput(hold time.Duration) *Input {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Input{
		hold: hold,
		held: make(map[config.ActionID]time.Time),
	}
}

// Key translates a key event into loop commands. quit is set when the user
// asked to leave.
func (in *Input) Key(ev *tcell.EventKey, now time.Time) (cmds []core.Command, quit bool) {
	action := keyAction(ev)
	switch action {
	case actionQuit:
		return nil, true
	case config.ActionNone:
		return nil, false
	case config.ActionMoveLeft, config.ActionMoveRight:
		// The new direction overrides the speed, so the other key is simply
		// forgotten instead of released.
		delete(in.held, opposite(action))
		in.held[action] = now
	}
	return []core.Command{{Action: action, Pressed: true}}, false
}

// Expire releases move keys that stopped repeating.
func (in *Input) Expire(now time.Time) []core.Command {
	var cmds []core.Command
	for action, last := range in.held {
		if now.Sub(last) >= in.hold {
			delete(in.held, action)
			cmds = append(cmds, core.Command{Action: action, Pressed: false})
		}
	}
	return cmds
}

// actionQuit is local to the terminal and never reaches the session.
const actionQuit = config.ActionCount

func keyAction(ev *tcell.EventKey) config.ActionID {
	switch ev.Key() {
	case tcell.KeyLeft:
		return config.ActionMoveLeft
	case tcell.KeyRight:
		return config.ActionMoveRight
	case tcell.KeyUp:
		return config.ActionJump
	case tcell.KeyEnter:
		return config.ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return config.ActionFire
		case 's':
			return config.ActionStart
		case 'p', ' ':
			return config.ActionPause
		case 'r':
			return config.ActionRespawn
		case 'q':
			return actionQuit
		}
	}
	return config.ActionNone
}

func opposite(a config.ActionID) config.ActionID {
	if a == config.ActionMoveLeft {
		return config.ActionMoveRight
	}
	return config.ActionMoveLeft
}
