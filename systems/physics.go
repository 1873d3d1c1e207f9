package systems

import (
	"math"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop is how far a body may already sit inside a blocker and still
// be pushed back to its surface.
const contactSlop = 1.0

// UpdatePhysics steps every enabled body by one tick: gravity, then X, then Y,
// then the world bounds. Bodies stop at anything a collide relation says
// blocks them and rebound by their bounce on that axis.
func UpdatePhysics(e *ecs.ECS) {
	relations := getRelations(e)
	dt := 1 / float64(cfg.World.TPS)
	// A rebound slower than one tick of gravity settles the body.
	rest := cfg.World.Gravity * dt

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		if !physics.Enabled {
			return
		}
		obj := components.Object.Get(entry)

		if physics.AllowGravity {
			physics.VelocityY += cfg.World.Gravity * dt
		}

		var blocking []string
		if relations != nil {
			blocking = relations.BlockingTags(bodyTag(obj.Object))
		}

		resolveHorizontalMovement(physics, obj.Object, physics.VelocityX*dt, blocking, rest)
		resolveVerticalMovement(physics, obj.Object, physics.VelocityY*dt, blocking, rest)
		if physics.CollideWorldBounds {
			clampToWorld(physics, obj.Object, rest)
		}

		obj.Update()
	})
}

func resolveHorizontalMovement(physics *components.PhysicsData, object *resolv.Object, dx float64, blocking []string, rest float64) {
	if dx == 0 {
		return
	}
	hit := sweep(object, dx, 0, blocking)
	if hit == nil {
		object.X += dx
		return
	}
	if dx > 0 {
		object.X = hit.X - object.W
	} else {
		object.X = hit.X + hit.W
	}
	physics.VelocityX = gamemath.Rebound(physics.VelocityX, physics.BounceX, rest)
}

// resolveVerticalMovement also refreshes the grounded flag: only a downward
// stop on another body grounds.
func resolveVerticalMovement(physics *components.PhysicsData, object *resolv.Object, dy float64, blocking []string, rest float64) {
	physics.OnGround = nil
	if dy == 0 {
		return
	}
	hit := sweep(object, 0, dy, blocking)
	if hit == nil {
		object.Y += dy
		return
	}
	if dy > 0 {
		object.Y = hit.Y - object.H
		physics.OnGround = hit
	} else {
		object.Y = hit.Y + hit.H
	}
	physics.VelocityY = gamemath.Rebound(physics.VelocityY, physics.BounceY, rest)
}

// sweep finds the nearest blocker in the path of a move along one axis.
func sweep(object *resolv.Object, dx, dy float64, blocking []string) *resolv.Object {
	if len(blocking) == 0 || object.Space == nil {
		return nil
	}

	// Reach one extra pixel so bodies resting on a cell edge are found.
	checkX, checkY := dx, dy
	if dx != 0 {
		checkX += math.Copysign(1, dx)
	}
	if dy != 0 {
		checkY += math.Copysign(1, dy)
	}
	check := object.Check(checkX, checkY, blocking...)
	if check == nil {
		return nil
	}

	self := rectOf(object)
	delta := dx + dy
	best := delta
	var hit *resolv.Object

	for _, other := range check.Objects {
		r := rectOf(other)
		var gap float64
		switch {
		case dx > 0:
			if !gamemath.OverlapsY(self, r) {
				continue
			}
			gap = r.X - self.Right()
		case dx < 0:
			if !gamemath.OverlapsY(self, r) {
				continue
			}
			gap = r.Right() - self.X
		case dy > 0:
			if !gamemath.OverlapsX(self, r) {
				continue
			}
			gap = r.Y - self.Bottom()
		default:
			if !gamemath.OverlapsX(self, r) {
				continue
			}
			gap = r.Bottom() - self.Y
		}

		if delta > 0 {
			if gap < -contactSlop || gap > best {
				continue
			}
		} else if gap > contactSlop || gap < best {
			continue
		}
		best = gap
		hit = other
	}

	return hit
}

// clampToWorld keeps a body inside the arena. The floor blocks but never grounds.
func clampToWorld(physics *components.PhysicsData, object *resolv.Object, rest float64) {
	w, h := float64(cfg.World.Width), float64(cfg.World.Height)

	if object.X < 0 {
		object.X = 0
		if physics.VelocityX < 0 {
			physics.VelocityX = gamemath.Rebound(physics.VelocityX, physics.BounceX, rest)
		}
	} else if object.X+object.W > w {
		object.X = w - object.W
		if physics.VelocityX > 0 {
			physics.VelocityX = gamemath.Rebound(physics.VelocityX, physics.BounceX, rest)
		}
	}

	if object.Y < 0 {
		object.Y = 0
		if physics.VelocityY < 0 {
			physics.VelocityY = gamemath.Rebound(physics.VelocityY, physics.BounceY, rest)
		}
	} else if object.Y+object.H > h {
		object.Y = h - object.H
		if physics.VelocityY > 0 {
			physics.VelocityY = gamemath.Rebound(physics.VelocityY, physics.BounceY, rest)
		}
	}
}

func rectOf(object *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: object.X, Y: object.Y, W: object.W, H: object.H}
}

// bodyTag is the collision tag a factory gave the body.
func bodyTag(object *resolv.Object) string {
	if t := object.Tags(); len(t) > 0 {
		return t[0]
	}
	return ""
}
