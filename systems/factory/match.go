package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMatch(ecs *ecs.ECS, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State: cfg.MatchRunning,
		Seed:  seed,
	})
	return match
}
