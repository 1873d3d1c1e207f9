package systems

import (
	"github.com/automoto/starcatch/components"
	"github.com/automoto/starcatch/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getRelations(e *ecs.ECS) *components.RelationsData {
	entry, ok := components.Relations.First(e.World)
	if !ok {
		return nil
	}
	return components.Relations.Get(entry)
}

type contactPair struct {
	a, b *donburi.Entry
}

// UpdateRelations runs the callbacks of every relation whose bodies are in
// contact this tick, in registration order. It stops as soon as a callback
// pauses the simulation.
func UpdateRelations(e *ecs.ECS) {
	relations := getRelations(e)
	if relations == nil {
		return
	}

	for _, rel := range relations.Triggers() {
		for _, pair := range findContacts(e, rel) {
			if IsSimulationPaused(e) {
				return
			}
			// An earlier callback may have moved or disabled either body.
			if !inContact(rel.Kind, pair.a, pair.b) {
				continue
			}
			rel.OnContact(e, pair.a, pair.b)
		}
	}
}

func findContacts(e *ecs.ECS, rel components.Relation) []contactPair {
	var as, bs []*donburi.Entry
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.HasTags(rel.A) {
			as = append(as, entry)
		}
		if obj.HasTags(rel.B) {
			bs = append(bs, entry)
		}
	})

	var pairs []contactPair
	for _, a := range as {
		for _, b := range bs {
			if a != b && inContact(rel.Kind, a, b) {
				pairs = append(pairs, contactPair{a: a, b: b})
			}
		}
	}
	return pairs
}

func inContact(kind components.RelationKind, a, b *donburi.Entry) bool {
	if !bodyActive(a) || !bodyActive(b) {
		return false
	}
	ra := components.Object.Get(a).Rect()
	rb := components.Object.Get(b).Rect()
	if kind == components.RelationOverlap {
		return gamemath.Overlaps(ra, rb)
	}
	return gamemath.Touches(ra, rb)
}

// bodyActive is false for bodies taken out of play, such as collected stars.
func bodyActive(entry *donburi.Entry) bool {
	if !entry.Valid() {
		return false
	}
	if entry.HasComponent(components.Physics) {
		return components.Physics.Get(entry).Enabled
	}
	return components.Object.Get(entry).Space != nil
}
