package core

// Action is a player command shared by the terminal and web front ends.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRelease
	ActionPause
	ActionNewGame
	ActionNextLevel
	ActionSound
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionRelease:   "release",
	ActionPause:     "pause",
	ActionNewGame:   "new",
	ActionNextLevel: "next",
	ActionSound:     "sound",
	ActionQuit:      "quit",
}

// String returns the wire name of the action.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAction returns the action with the given wire name.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}
