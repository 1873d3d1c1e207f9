package scenes

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/systems/factory"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
)

// runUntilLanded ticks the scene until the player has been airborne and then
// grounded, and reports the ticks taken.
func runUntilLanded(t *testing.T, scene *PlatformerScene) int {
	t.Helper()
	physics := components.Physics.Get(scene.Player())
	airborne := false
	for i := 1; i <= 10*cfg.World.TPS; i++ {
		scene.Update()
		if !physics.Grounded() {
			airborne = true
		} else if airborne {
			return i
		}
	}
	t.Fatal("player never landed")
	return 0
}

// collectRemaining moves every active star onto the player, one at a time,
// and runs the contact pass after each move.
func collectRemaining(scene *PlatformerScene) {
	pObj := components.Object.Get(scene.Player())
	var batch []*donburi.Entry
	tags.Star.Each(scene.ECS().World, func(entry *donburi.Entry) {
		batch = append(batch, entry)
	})
	for _, star := range batch {
		if !components.Star.Get(star).Active {
			continue
		}
		components.Object.Get(star).SetCenter(pObj.CenterX(), pObj.CenterY())
		systems.UpdateRelations(scene.ECS())
	}
}

func TestRunLandCollectBatch(t *testing.T) {
	keys := scriptedKeys{cfg.ActionMoveRight: true}
	h := newTestHost(11, keys)
	scene := mustStart(t, h)
	startX := components.Object.Get(scene.Player()).CenterX()

	runUntilLanded(t, scene)

	player := scene.Player()
	if x := components.Object.Get(player).CenterX(); x <= startX {
		t.Errorf("player x = %v, did not run right from %v", x, startX)
	}
	if got := components.Animation.Get(player).CurrentState; got != cfg.AnimRight {
		t.Errorf("animation = %v, want right", got)
	}

	collectRemaining(scene)

	if scene.Score() != 120 {
		t.Errorf("score = %d, want 120", scene.Score())
	}
	if scene.ActiveStars() != cfg.Star.Count {
		t.Errorf("active stars = %d, want %d", scene.ActiveStars(), cfg.Star.Count)
	}
	if scene.Bombs() != 1 {
		t.Errorf("bombs = %d, want 1", scene.Bombs())
	}
	if scene.Over() {
		t.Error("match ended without a bomb hit")
	}
}

func TestBombHitFreezesMatch(t *testing.T) {
	keys := scriptedKeys{}
	h := newTestHost(5, keys)
	scene := mustStart(t, h)
	runUntilLanded(t, scene)

	pObj := components.Object.Get(scene.Player())
	factory.CreateBomb(scene.ECS(), 1, pObj.CenterX(), pObj.CenterY(), 0, 0)

	keys[cfg.ActionMoveLeft] = true
	scene.Update()

	if !scene.Over() {
		t.Fatal("bomb on the player did not end the match")
	}
	if scene.RestartRequested() {
		t.Error("restart requested without Enter")
	}

	x, y := pObj.X, pObj.Y
	for i := 0; i < 30; i++ {
		scene.Update()
	}
	if pObj.X != x || pObj.Y != y {
		t.Errorf("player moved from (%v, %v) to (%v, %v) after game over", x, y, pObj.X, pObj.Y)
	}

	keys[cfg.ActionRestart] = true
	scene.Update()
	if !scene.RestartRequested() {
		t.Error("Enter after game over did not request a restart")
	}
	scene.Update()
	if scene.RestartRequested() {
		t.Error("holding Enter kept requesting restarts")
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	h := newTestHost(5, scriptedKeys{cfg.ActionRestart: true})
	scene := mustStart(t, h)

	scene.Update()

	if scene.RestartRequested() {
		t.Error("restart requested during a running match")
	}
}

type snapshot struct {
	bounces []float64
	bombX   float64
	bombVX  float64
}

func playScripted(t *testing.T, seed int64) snapshot {
	t.Helper()
	keys := scriptedKeys{cfg.ActionMoveRight: true}
	h := newTestHost(seed, keys)
	scene := mustStart(t, h)

	runUntilLanded(t, scene)
	collectRemaining(scene)

	var snap snapshot
	snap.bounces = make([]float64, cfg.Star.Count)
	tags.Star.Each(scene.ECS().World, func(entry *donburi.Entry) {
		snap.bounces[components.Star.Get(entry).Index] = components.Physics.Get(entry).BounceY
	})
	bomb, ok := tags.Bomb.First(scene.ECS().World)
	if !ok {
		t.Fatal("no bomb after clearing the batch")
	}
	snap.bombX = components.Bomb.Get(bomb).SpawnX
	snap.bombVX = components.Physics.Get(bomb).VelocityX
	return snap
}

func TestSameSeedSameMatch(t *testing.T) {
	a := playScripted(t, 99)
	b := playScripted(t, 99)

	for i := range a.bounces {
		if a.bounces[i] != b.bounces[i] {
			t.Errorf("star %d bounce %v != %v", i, a.bounces[i], b.bounces[i])
		}
		if a.bounces[i] < cfg.Star.BounceMin || a.bounces[i] > cfg.Star.BounceMax {
			t.Errorf("star %d bounce %v out of range", i, a.bounces[i])
		}
	}
	if a.bombX != b.bombX || a.bombVX != b.bombVX {
		t.Errorf("bomb (%v, %v) != (%v, %v)", a.bombX, a.bombVX, b.bombX, b.bombVX)
	}
}
