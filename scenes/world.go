package scenes

import (
	"errors"
	"image/color"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/gamemath"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ErrWorldAlreadySetup is returned by SetupWorld on a world that already holds a match.
var ErrWorldAlreadySetup = errors.New("world already set up")

// PlatformerScene is one match: a donburi world plus the ordered systems
// that run it.
type PlatformerScene struct {
	ecs        *ecs.ECS
	controller *systems.Controller
	seed       int64
	closed     bool
}

func newPlatformerScene(seed int64, input systems.InputSource) (*PlatformerScene, error) {
	rng := gamemath.NewRand(seed)
	ctrl := systems.NewController(rng)
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and motion run every tick; the mapper checks the match state itself
	ecs.AddSystem(systems.NewUpdateInput(input))
	ecs.AddSystem(systems.NewUpdatePlayer(ctrl))

	// Frozen once a bomb pauses the simulation
	ecs.AddSystem(systems.WithSimulationCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithSimulationCheck(systems.UpdateRelations))

	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateScorePop)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawScore)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	if err := SetupWorld(ecs, ctrl, rng); err != nil {
		return nil, err
	}
	systems.GetMatch(ecs).Seed = seed

	return &PlatformerScene{ecs: ecs, controller: ctrl, seed: seed}, nil
}

// SetupWorld populates an empty world: space, match state, platforms,
// player, the first star batch, the score and the relations that route
// contacts to ctrl.
func SetupWorld(e *ecs.ECS, ctrl systems.GameController, rng gamemath.Source) error {
	if _, ok := components.Match.First(e.World); ok {
		return ErrWorldAlreadySetup
	}

	factory.CreateSpace(e, cfg.World.Width, cfg.World.Height, cfg.World.CellSize, cfg.World.CellSize)
	factory.CreateMatch(e, 0)

	for _, spec := range cfg.Platforms.Layout {
		factory.CreatePlatform(e, spec)
	}

	factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
	factory.CreateStarBatch(e, rng)
	factory.CreateScore(e)
	factory.CreateRelations(e, ctrl.OnCollect, ctrl.OnHazardHit)

	return nil
}

func (ps *PlatformerScene) Update() {
	if ps.closed {
		return
	}
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.closed {
		return
	}
	ps.ecs.Draw(screen)
}

// ECS exposes the match's world, mainly for tests.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	return ps.ecs
}

func (ps *PlatformerScene) Seed() int64 {
	return ps.seed
}

// Closed returns true once the host has torn the match down.
func (ps *PlatformerScene) Closed() bool {
	return ps.closed
}

func (ps *PlatformerScene) Score() int {
	if score := systems.GetScore(ps.ecs); score != nil {
		return score.Value
	}
	return 0
}

func (ps *PlatformerScene) State() cfg.MatchStateID {
	if match := systems.GetMatch(ps.ecs); match != nil {
		return match.State
	}
	return cfg.MatchOver
}

func (ps *PlatformerScene) Over() bool {
	return ps.State() == cfg.MatchOver
}

// RestartRequested returns true on the tick Enter is pressed after game over.
func (ps *PlatformerScene) RestartRequested() bool {
	if ps.closed || !ps.Over() {
		return false
	}
	input := systems.GetOrCreateInput(ps.ecs)
	return systems.GetAction(input, cfg.ActionRestart).JustPressed
}

func (ps *PlatformerScene) ActiveStars() int {
	return systems.CountActiveStars(ps.ecs)
}

func (ps *PlatformerScene) Bombs() int {
	return systems.CountBombs(ps.ecs)
}

// Player returns the player entry, or nil after teardown.
func (ps *PlatformerScene) Player() *donburi.Entry {
	entry, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return entry
}

// close releases every entity of the match and empties its space. Update
// and Draw do nothing afterwards.
func (ps *PlatformerScene) close() {
	world := ps.ecs.World

	if spaceEntry, ok := components.Space.First(world); ok {
		space := components.Space.Get(spaceEntry)
		space.Remove(space.Objects()...)
	}

	query := donburi.NewQuery(filter.Or(
		filter.Contains(components.Object),
		filter.Contains(components.Space),
		filter.Contains(components.Match),
		filter.Contains(components.Score),
		filter.Contains(components.Input),
		filter.Contains(components.Relations),
	))
	var entities []donburi.Entity
	query.Each(world, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, entity := range entities {
		world.Remove(entity)
	}

	ps.closed = true
}
