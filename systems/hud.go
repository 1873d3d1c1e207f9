package systems

import (
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawScore renders the score text in the top-left corner. The text grows
// briefly after each collection.
func DrawScore(e *ecs.ECS, screen *ebiten.Image) {
	score := GetScore(e)
	if score == nil {
		return
	}
	face := fonts.Score.Get()
	ascent := face.Metrics().Ascent.Ceil()

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	// text.Draw positions by baseline; shift so (X, Y) is the top-left corner
	hudDrawOp.GeoM.Translate(0, float64(ascent))
	hudDrawOp.GeoM.Scale(float64(score.Scale), float64(score.Scale))
	hudDrawOp.GeoM.Translate(cfg.Score.X, cfg.Score.Y)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.Score.Color)

	text.DrawWithOptions(screen, score.Text, face, hudDrawOp)
}
