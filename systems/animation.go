package systems

import (
	"github.com/automoto/starcatch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		animData := components.Animation.Get(entry)
		if animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Update()
		}
	})
}
