package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateScore(ecs *ecs.ECS) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{
		Value: 0,
		Text:  cfg.Score.InitialText,
		Scale: 1,
	})
	return score
}
