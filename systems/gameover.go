package systems

import (
	"image/color"

	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver dims the frozen world and shows the restart hint once the match is over.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsOver(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.OverlayColor,
		false,
	)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title, cfg.GameOver.TitleY, width, cfg.GameOver.TitleColor)
	drawCentered(screen, cfg.GameOver.Hint, fonts.Hint, cfg.GameOver.HintY, width, cfg.GameOver.HintColor)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y, width float64, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, int(y), clr)
}
