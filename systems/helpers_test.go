package systems_test

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/gamemath"
	"github.com/automoto/starcatch/scenes"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// heldKeys is an InputSource with a fixed set of held actions.
type heldKeys map[cfg.ActionID]bool

func (h heldKeys) Held(action cfg.ActionID) bool {
	return h[action]
}

// stubRandom replays queued draws and records the ranges asked for.
// An empty queue answers with the low end of the range.
type stubRandom struct {
	ints      []int
	floats    []float64
	intRanges [][2]int
}

func (s *stubRandom) IntBetween(min, max int) int {
	s.intRanges = append(s.intRanges, [2]int{min, max})
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *stubRandom) FloatBetween(min, max float64) float64 {
	if len(s.floats) == 0 {
		return min
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newWorld(t *testing.T, rng gamemath.Source) (*ecs.ECS, *systems.Controller) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	ctrl := systems.NewController(rng)
	if err := scenes.SetupWorld(e, ctrl, rng); err != nil {
		t.Fatalf("SetupWorld: %v", err)
	}
	return e, ctrl
}

// tick runs the input poll and the mapper once.
func tick(e *ecs.ECS, ctrl *systems.Controller, keys heldKeys) {
	systems.NewUpdateInput(keys)(e)
	ctrl.OnTick(e)
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return entry
}

func stars(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func bombs(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Bomb.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// collectAll feeds every active star to OnCollect until the batch resets.
func collectAll(e *ecs.ECS, ctrl *systems.Controller, p *donburi.Entry) {
	for _, s := range stars(e) {
		if components.Star.Get(s).Active {
			ctrl.OnCollect(e, p, s)
		}
	}
}

func setPlayerX(p *donburi.Entry, x float64) {
	obj := components.Object.Get(p)
	obj.SetCenter(x, obj.CenterY())
}
