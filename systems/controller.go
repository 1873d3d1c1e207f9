package systems

import (
	"github.com/automoto/starcatch/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameController is the per-match game logic. OnTick runs once per tick
// before physics; the other two are wired as relation callbacks.
type GameController interface {
	OnTick(e *ecs.ECS)
	OnCollect(e *ecs.ECS, player, star *donburi.Entry)
	OnHazardHit(e *ecs.ECS, player, bomb *donburi.Entry)
}

// Controller is the GameController for one match. It owns the match's
// random source so every draw happens in a fixed order.
type Controller struct {
	rng gamemath.Source
}

func NewController(rng gamemath.Source) *Controller {
	return &Controller{rng: rng}
}

// NewUpdatePlayer creates the system that drives ctrl.OnTick.
func NewUpdatePlayer(ctrl GameController) ecs.System {
	return func(e *ecs.ECS) {
		ctrl.OnTick(e)
	}
}
