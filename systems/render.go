package systems

import (
	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the arena with the sky, centred on the screen.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	sky := assets.GetImage(assets.TextureSky)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(
		float64(cfg.World.Width-sky.Bounds().Dx())/2,
		float64(cfg.World.Height-sky.Bounds().Dy())/2,
	)
	screen.DrawImage(sky, drawOp)
}

func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
}

// DrawSprites renders the player, then stars, then bombs.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
	tags.Bomb.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
}

// drawSprite draws an entity's texture, or its current animation frame,
// centred on its body.
func drawSprite(screen *ebiten.Image, entry *donburi.Entry) {
	sprite := components.Sprite.Get(entry)
	if !sprite.Visible {
		return
	}
	o := components.Object.Get(entry)

	var img *ebiten.Image
	if entry.HasComponent(components.Animation) {
		animData := components.Animation.Get(entry)
		frame := 0
		if animData.CurrentAnimation != nil {
			frame = animData.CurrentAnimation.Frame()
		} else if turn, ok := animData.Animations[cfg.AnimTurn]; ok {
			frame = turn.First
		}
		img = assets.GetFrame(animData.Texture, frame, animData.FrameWidth, animData.FrameHeight)
	} else {
		img = assets.GetImage(sprite.Texture)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(sprite.ScaleX, sprite.ScaleY)
	drawOp.GeoM.Translate(o.CenterX(), o.CenterY())

	if sprite.Tinted {
		drawOp.ColorScale.ScaleWithColor(sprite.Tint)
	}

	screen.DrawImage(img, drawOp)
}
