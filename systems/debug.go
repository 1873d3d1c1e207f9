package systems

import (
	"image/color"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies outlines every body in the space when --debug is set.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBodies {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvBomb):
			c = color.RGBA{255, 0, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
