package components

import (
	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/assets/animations"
	"github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.AnimationState
	Animations       map[config.AnimationState]*animations.Animation
	Texture          assets.TextureID
	FrameWidth       int
	FrameHeight      int
}

// Play switches to the clip for state. Asking for the clip that is already
// playing does nothing, so the clip keeps its place. It reports whether the
// clip changed.
func (a *AnimationData) Play(state config.AnimationState) bool {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return false
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No clip for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentState = state
		return true
	}

	a.CurrentAnimation = anim
	a.CurrentState = state
	a.CurrentAnimation.Restart()
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
