package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; the scene draws in registration order.
const Default ecs.LayerID = iota

// AnimationState names a player animation clip.
type AnimationState int

const (
	AnimNone AnimationState = iota
	AnimLeft
	AnimRight
	AnimTurn
)

func (s AnimationState) String() string {
	switch s {
	case AnimLeft:
		return "left"
	case AnimRight:
		return "right"
	case AnimTurn:
		return "turn"
	}
	return "none"
}

// MatchStateID is the match lifecycle. It only ever moves Running -> Over.
type MatchStateID int

const (
	MatchRunning MatchStateID = iota
	MatchOver
)

func (s MatchStateID) String() string {
	if s == MatchOver {
		return "over"
	}
	return "running"
}
