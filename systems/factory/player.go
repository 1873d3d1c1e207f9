package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{
		BounceX:            cfg.Player.Bounce,
		BounceY:            cfg.Player.Bounce,
		AllowGravity:       true,
		CollideWorldBounds: true,
		Enabled:            true,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Texture: assets.TextureDude,
		Visible: true,
		ScaleX:  1,
		ScaleY:  1,
	})

	animData := GenerateAnimations(cfg.PlayerAnimations, assets.TextureDude, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	components.Animation.Set(player, animData)

	addToSpace(ecs, player, obj)

	return player
}
