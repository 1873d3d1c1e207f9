package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether an action is held this tick.
type InputSource interface {
	Held(action cfg.ActionID) bool
}

// KeyboardSource reads the fixed key bindings from ebiten.
type KeyboardSource struct{}

func (KeyboardSource) Held(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// NewUpdateInput creates the system that polls src into the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
			input.Current[id] = src.Held(id)
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
