package systems

import (
	"fmt"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetScore returns the Score singleton, or nil before World Setup.
func GetScore(e *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}

// addScore is the only place the score changes.
func addScore(score *components.ScoreData, points int) {
	score.Value += points
	score.Text = fmt.Sprintf(cfg.Score.Format, score.Value)
	score.Scale = cfg.Score.PopScale
	score.Pop = gween.New(cfg.Score.PopScale, 1, cfg.Score.PopDuration, ease.OutQuad)
}

// UpdateScorePop eases the score text back to its normal size.
func UpdateScorePop(e *ecs.ECS) {
	score := GetScore(e)
	if score == nil || score.Pop == nil {
		return
	}
	scale, finished := score.Pop.Update(1 / float32(cfg.World.TPS))
	score.Scale = scale
	if finished {
		score.Pop = nil
		score.Scale = 1
	}
}
