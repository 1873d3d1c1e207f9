package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnCollect takes star out of play and scores it. Collecting the last
// active star drops the whole batch again and adds a bomb on the far side
// of the arena from the player.
func (c *Controller) OnCollect(e *ecs.ECS, player, star *donburi.Entry) {
	match := GetMatch(e)
	if match == nil || !match.Running() {
		return
	}
	if !components.Star.Get(star).Active {
		return
	}

	disableStar(star)
	addScore(GetScore(e), cfg.Star.Points)

	if CountActiveStars(e) > 0 {
		return
	}

	resetStarBatch(e)
	match.Batches++

	playerX := components.Object.Get(player).CenterX()
	bombs := CountBombs(e)
	if cfg.Bomb.MaxCount > 0 && bombs >= cfg.Bomb.MaxCount {
		log.Debug("bomb cap reached", "batch", match.Batches, "bombs", bombs)
		return
	}
	c.spawnBomb(e, playerX, bombs+1)
	log.Info("batch cleared", "batch", match.Batches, "bombs", bombs+1)
}

// spawnX picks a bomb x on the opposite half of the arena from playerX.
func (c *Controller) spawnX(playerX float64) int {
	if playerX < float64(cfg.Bomb.SplitX) {
		return c.rng.IntBetween(cfg.Bomb.SplitX, cfg.Bomb.MaxX)
	}
	return c.rng.IntBetween(cfg.Bomb.MinX, cfg.Bomb.SplitX)
}

func (c *Controller) spawnBomb(e *ecs.ECS, playerX float64, serial int) *donburi.Entry {
	x := c.spawnX(playerX)
	vx := c.rng.IntBetween(cfg.Bomb.MinSpeedX, cfg.Bomb.MaxSpeedX)
	log.Debug("bomb spawned", "serial", serial, "x", x, "vx", vx)
	return factory.CreateBomb(e, serial, float64(x), cfg.Bomb.SpawnY, float64(vx), cfg.Bomb.SpeedY)
}

// disableStar removes the star from the space and hides it until the next batch.
func disableStar(star *donburi.Entry) {
	data := components.Star.Get(star)
	data.Active = false

	obj := components.Object.Get(star)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	physics := components.Physics.Get(star)
	physics.Enabled = false
	physics.VelocityX = 0
	physics.VelocityY = 0
	physics.OnGround = nil

	components.Sprite.Get(star).Visible = false
}

// resetStarBatch brings every star back at its original x on the top edge,
// at rest, so the batch falls again.
func resetStarBatch(e *ecs.ECS) {
	spaceEntry, hasSpace := components.Space.First(e.World)

	tags.Star.Each(e.World, func(star *donburi.Entry) {
		data := components.Star.Get(star)
		data.Active = true

		obj := components.Object.Get(star)
		obj.SetCenter(data.OriginX, cfg.Star.StartY)
		if obj.Space == nil && hasSpace {
			components.Space.Get(spaceEntry).Add(obj.Object)
		}

		physics := components.Physics.Get(star)
		physics.Enabled = true
		physics.VelocityX = 0
		physics.VelocityY = 0
		physics.OnGround = nil

		components.Sprite.Get(star).Visible = true
	})
}

// CountActiveStars returns how many stars of the batch are still in play.
func CountActiveStars(e *ecs.ECS) int {
	count := 0
	tags.Star.Each(e.World, func(star *donburi.Entry) {
		if components.Star.Get(star).Active {
			count++
		}
	})
	return count
}

func CountBombs(e *ecs.ECS) int {
	count := 0
	tags.Bomb.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}
