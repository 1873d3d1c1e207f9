package archetypes

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
		components.Sprite,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Score = newArchetype(
		components.Score,
	)
	Match = newArchetype(
		components.Match,
	)
	Relations = newArchetype(
		components.Relations,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
