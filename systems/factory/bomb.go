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

// CreateBomb spawns a gravity-free bomb centred on (x, y) that rebounds
// off everything it meets at full speed.
func CreateBomb(ecs *ecs.ECS, serial int, x, y, vx, vy float64) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)

	size := cfg.Bomb.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvBomb)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	components.Object.SetValue(bomb, components.ObjectData{Object: obj})

	components.Bomb.SetValue(bomb, components.BombData{
		Serial: serial,
		SpawnX: x,
	})
	components.Physics.SetValue(bomb, components.PhysicsData{
		VelocityX:          vx,
		VelocityY:          vy,
		BounceX:            cfg.Bomb.Bounce,
		BounceY:            cfg.Bomb.Bounce,
		AllowGravity:       false,
		CollideWorldBounds: true,
		Enabled:            true,
	})
	components.Sprite.SetValue(bomb, components.SpriteData{
		Texture: assets.TextureBomb,
		Visible: true,
		ScaleX:  1,
		ScaleY:  1,
	})
	addToSpace(ecs, bomb, obj)

	return bomb
}
