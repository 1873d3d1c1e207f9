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

// CreatePlatform places a static platform centred on (spec.X, spec.Y).
// Scale grows the ground texture and its body together.
func CreatePlatform(ecs *ecs.ECS, spec cfg.PlatformSpec) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	w := cfg.Platforms.Width * spec.Scale
	h := cfg.Platforms.Height * spec.Scale

	obj := resolv.NewObject(spec.X-w/2, spec.Y-h/2, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Sprite.SetValue(platform, components.SpriteData{
		Texture: assets.TextureGround,
		Visible: true,
		ScaleX:  spec.Scale,
		ScaleY:  spec.Scale,
	})
	addToSpace(ecs, platform, obj)

	return platform
}
