package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRelations registers the match's collide and overlap pairs.
// onCollect fires for player/star overlaps, onHazard for player/bomb contact.
func CreateRelations(ecs *ecs.ECS, onCollect, onHazard components.ContactFunc) *donburi.Entry {
	entry := archetypes.Relations.Spawn(ecs)
	rel := components.Relations.Get(entry)

	rel.Collide(tags.ResolvPlayer, tags.ResolvPlatform, nil)
	rel.Collide(tags.ResolvStar, tags.ResolvPlatform, nil)
	rel.Collide(tags.ResolvBomb, tags.ResolvPlatform, nil)
	rel.Overlap(tags.ResolvPlayer, tags.ResolvStar, onCollect)
	rel.Collide(tags.ResolvPlayer, tags.ResolvBomb, onHazard)

	return entry
}
