package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFire
	ActionStart
	ActionPause
	ActionRespawn
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionJump:      "jump",
	ActionFire:      "fire",
	ActionStart:     "start",
	ActionPause:     "pause",
	ActionRespawn:   "respawn",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsControl reports whether the action drives the round rather than the player.
func (a ActionID) IsControl() bool {
	return a == ActionStart || a == ActionPause || a == ActionRespawn
}
