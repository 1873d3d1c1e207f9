package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi/ecs"
)

// OnTick maps the held arrow keys to player motion. It does nothing once
// the match is over.
func (c *Controller) OnTick(e *ecs.ECS) {
	match := GetMatch(e)
	if match == nil || !match.Running() {
		return
	}
	match.Ticks++

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := GetOrCreateInput(e)
	physics := components.Physics.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	handleMovementInput(
		GetAction(input, cfg.ActionMoveLeft),
		GetAction(input, cfg.ActionMoveRight),
		physics, animData,
	)
	handleJumpInput(GetAction(input, cfg.ActionMoveUp), physics)
}

// Left wins over right; with neither held the player stops and faces the camera.
func handleMovementInput(moveLeftAction, moveRightAction components.ActionState, physics *components.PhysicsData, animData *components.AnimationData) {
	switch {
	case moveLeftAction.Pressed:
		physics.VelocityX = -cfg.Player.RunSpeed
		animData.Play(cfg.AnimLeft)
	case moveRightAction.Pressed:
		physics.VelocityX = cfg.Player.RunSpeed
		animData.Play(cfg.AnimRight)
	default:
		physics.VelocityX = 0
		animData.Play(cfg.AnimTurn)
	}
}

// Holding up only jumps from the ground; gravity handles the rest.
func handleJumpInput(jumpAction components.ActionState, physics *components.PhysicsData) {
	if jumpAction.Pressed && physics.Grounded() {
		physics.VelocityY = -cfg.Player.JumpSpeed
	}
}
