package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/gamemath"
	"github.com/automoto/starcatch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStar spawns one active star centred on (x, y).
func CreateStar(ecs *ecs.ECS, index int, x, y, bounceY float64) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	w, h := cfg.Star.Width, cfg.Star.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvStar)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(star, components.ObjectData{Object: obj})

	components.Star.SetValue(star, components.StarData{
		Index:   index,
		OriginX: x,
		Active:  true,
	})
	components.Physics.SetValue(star, components.PhysicsData{
		BounceY:      bounceY,
		AllowGravity: true,
		Enabled:      true,
	})
	components.Sprite.SetValue(star, components.SpriteData{
		Texture: assets.TextureStar,
		Visible: true,
		ScaleX:  1,
		ScaleY:  1,
	})
	addToSpace(ecs, star, obj)

	return star
}

// CreateStarBatch lays the batch out left to right. Each star draws its
// vertical bounce once, here.
func CreateStarBatch(ecs *ecs.ECS, rng gamemath.Source) []*donburi.Entry {
	stars := make([]*donburi.Entry, 0, cfg.Star.Count)
	for i := 0; i < cfg.Star.Count; i++ {
		x := cfg.Star.StartX + float64(i)*cfg.Star.StepX
		bounce := rng.FloatBetween(cfg.Star.BounceMin, cfg.Star.BounceMax)
		stars = append(stars, CreateStar(ecs, i, x, cfg.Star.StartY, bounce))
	}
	return stars
}
