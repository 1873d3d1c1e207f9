package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to entry and registers it with the world's space, if any.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
