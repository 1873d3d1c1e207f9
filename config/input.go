package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown // bound but unused by the mapper
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration. The scheme is fixed: cursor keys only.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
			ActionRestart:   {Keys: []ebiten.Key{ebiten.KeyEnter}},
		},
	}
}
