package systems

import (
	"github.com/automoto/starcatch/components"
	"github.com/yohamta/donburi/ecs"
)

// GetMatch returns the Match singleton, or nil before World Setup.
func GetMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// IsOver returns true once a bomb has ended the match.
func IsOver(e *ecs.ECS) bool {
	match := GetMatch(e)
	return match != nil && !match.Running()
}

// IsSimulationPaused returns true while physics and relations are frozen.
func IsSimulationPaused(e *ecs.ECS) bool {
	match := GetMatch(e)
	return match != nil && match.Paused
}

// WithSimulationCheck wraps a system so it is skipped while the simulation is paused.
func WithSimulationCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsSimulationPaused(e) {
			return
		}
		system(e)
	}
}
