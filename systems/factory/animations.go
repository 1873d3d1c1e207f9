package factory

import (
	"fmt"

	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/assets/animations"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
)

// GenerateAnimations builds an AnimationData with one clip per definition.
// Frames are cut from texture lazily when drawn.
func GenerateAnimations(defs map[cfg.AnimationState]cfg.AnimationDef, texture assets.TextureID, frameWidth, frameHeight int) *components.AnimationData {
	if len(defs) == 0 {
		panic(fmt.Sprintf("No animation definitions found for texture: %s", texture))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.AnimationState]*animations.Animation, len(defs)),
		Texture:      texture,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentState: cfg.AnimNone,
	}

	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed, def.Loop)
	}

	return animData
}
