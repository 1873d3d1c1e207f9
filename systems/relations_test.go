package systems_test

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/systems/factory"
)

func TestOverlapCollectsStar(t *testing.T) {
	e, _ := newWorld(t, &stubRandom{})
	p := player(t, e)
	pObj := components.Object.Get(p)
	s := stars(e)[2]
	components.Object.Get(s).SetCenter(pObj.CenterX(), pObj.CenterY())

	systems.UpdateRelations(e)

	if components.Star.Get(s).Active {
		t.Error("overlapping star not collected")
	}
	if got := systems.GetScore(e).Value; got != 10 {
		t.Errorf("score = %d, want 10", got)
	}

	// Already collected; a second pass must not score again
	systems.UpdateRelations(e)
	if got := systems.GetScore(e).Value; got != 10 {
		t.Errorf("score = %d after second pass, want 10", got)
	}
}

func TestEdgeTouchDoesNotCollect(t *testing.T) {
	e, _ := newWorld(t, &stubRandom{})
	pObj := components.Object.Get(player(t, e))
	s := stars(e)[0]
	sObj := components.Object.Get(s)
	sObj.SetCenter(pObj.X+pObj.W+sObj.W/2, pObj.CenterY())

	systems.UpdateRelations(e)

	if !components.Star.Get(s).Active {
		t.Error("star touching the player's edge was collected")
	}
}

func TestEdgeTouchWithBombEndsMatch(t *testing.T) {
	e, _ := newWorld(t, &stubRandom{})
	pObj := components.Object.Get(player(t, e))
	factory.CreateBomb(e, 1, pObj.X+pObj.W+cfg.Bomb.Size/2, pObj.CenterY(), 0, 0)

	systems.UpdateRelations(e)

	if !systems.IsOver(e) {
		t.Error("bomb touching the player did not end the match")
	}
}

func TestRelationsStopOncePaused(t *testing.T) {
	e, _ := newWorld(t, &stubRandom{})
	pObj := components.Object.Get(player(t, e))
	cx, cy := pObj.CenterX(), pObj.CenterY()

	all := stars(e)
	components.Object.Get(all[0]).SetCenter(cx, cy)
	factory.CreateBomb(e, 1, cx, cy, 0, 0)

	systems.UpdateRelations(e)

	// Stars are checked before bombs, so the star still scores
	if got := systems.GetScore(e).Value; got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if !systems.IsOver(e) || !systems.IsSimulationPaused(e) {
		t.Fatal("bomb contact did not end and pause the match")
	}

	components.Object.Get(all[1]).SetCenter(cx, cy)
	systems.UpdateRelations(e)
	if got := systems.GetScore(e).Value; got != 10 {
		t.Errorf("score = %d after the match ended, want 10", got)
	}
	if !components.Star.Get(all[1]).Active {
		t.Error("star collected after the match ended")
	}
}
