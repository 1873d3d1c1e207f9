package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type RelationKind int

const (
	// RelationCollide bodies block each other; touching counts as contact.
	RelationCollide RelationKind = iota
	// RelationOverlap bodies pass through each other; only shared area counts.
	RelationOverlap
)

// ContactFunc is called with the A-side entry first.
type ContactFunc func(e *ecs.ECS, a, b *donburi.Entry)

// Relation pairs two resolv tags.
type Relation struct {
	Kind      RelationKind
	A, B      string
	OnContact ContactFunc
}

type RelationsData struct {
	Relations []Relation
}

func (r *RelationsData) Collide(a, b string, fn ContactFunc) {
	r.Relations = append(r.Relations, Relation{Kind: RelationCollide, A: a, B: b, OnContact: fn})
}

func (r *RelationsData) Overlap(a, b string, fn ContactFunc) {
	r.Relations = append(r.Relations, Relation{Kind: RelationOverlap, A: a, B: b, OnContact: fn})
}

// BlockingTags lists the tags a body carrying tag is stopped by. Collide
// relations with a callback are reported through the callback instead.
func (r *RelationsData) BlockingTags(tag string) []string {
	var out []string
	for _, rel := range r.Relations {
		if rel.Kind != RelationCollide || rel.OnContact != nil {
			continue
		}
		if rel.A == tag {
			out = append(out, rel.B)
		} else if rel.B == tag {
			out = append(out, rel.A)
		}
	}
	return out
}

// Triggers returns the relations that carry a callback, in registration order.
func (r *RelationsData) Triggers() []Relation {
	var out []Relation
	for _, rel := range r.Relations {
		if rel.OnContact != nil {
			out = append(out, rel)
		}
	}
	return out
}

var Relations = donburi.NewComponentType[RelationsData]()
