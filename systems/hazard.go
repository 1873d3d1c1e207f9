package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnHazardHit ends the match: the world freezes where it is and the player
// turns red facing the camera. Later hits are ignored.
func (c *Controller) OnHazardHit(e *ecs.ECS, player, bomb *donburi.Entry) {
	match := GetMatch(e)
	if match == nil || !match.End() {
		return
	}
	match.Paused = true

	components.Player.Get(player).Hit = true
	components.Sprite.Get(player).SetTint(cfg.Player.HitTint)
	components.Animation.Get(player).Play(cfg.AnimTurn)

	log.Info("game over",
		"score", GetScore(e).Value,
		"batches", match.Batches,
		"bomb", components.Bomb.Get(bomb).Serial,
		"ticks", match.Ticks,
	)
}
