package systems_test

import (
	"testing"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
)

func TestMapperPolicy(t *testing.T) {
	tests := []struct {
		name  string
		keys  heldKeys
		wantX float64
		anim  cfg.AnimationState
	}{
		{"no key", heldKeys{}, 0, cfg.AnimTurn},
		{"left", heldKeys{cfg.ActionMoveLeft: true}, -160, cfg.AnimLeft},
		{"right", heldKeys{cfg.ActionMoveRight: true}, 160, cfg.AnimRight},
		{"left wins over right", heldKeys{cfg.ActionMoveLeft: true, cfg.ActionMoveRight: true}, -160, cfg.AnimLeft},
		{"down is ignored", heldKeys{cfg.ActionMoveDown: true}, 0, cfg.AnimTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ctrl := newWorld(t, &stubRandom{})
			p := player(t, e)
			components.Physics.Get(p).VelocityX = 55

			for i := 0; i < 3; i++ {
				tick(e, ctrl, tt.keys)
				if got := components.Physics.Get(p).VelocityX; got != tt.wantX {
					t.Fatalf("tick %d: VelocityX = %v, want %v", i, got, tt.wantX)
				}
				if got := components.Animation.Get(p).CurrentState; got != tt.anim {
					t.Fatalf("tick %d: animation = %v, want %v", i, got, tt.anim)
				}
			}
		})
	}
}

func TestMapperKeepsRunningClip(t *testing.T) {
	e, ctrl := newWorld(t, &stubRandom{})
	p := player(t, e)
	animData := components.Animation.Get(p)
	left := heldKeys{cfg.ActionMoveLeft: true}

	tick(e, ctrl, left)
	clip := animData.CurrentAnimation
	for i := 0; i < 8; i++ {
		clip.Update()
	}
	frame := clip.Frame()

	tick(e, ctrl, left)
	if animData.CurrentAnimation != clip || clip.Frame() != frame {
		t.Errorf("holding left restarted the clip: frame %d -> %d", frame, clip.Frame())
	}
}

func TestJumpNeedsGround(t *testing.T) {
	e, ctrl := newWorld(t, &stubRandom{})
	p := player(t, e)
	physics := components.Physics.Get(p)
	up := heldKeys{cfg.ActionMoveUp: true}

	physics.OnGround = nil
	physics.VelocityY = 40
	tick(e, ctrl, up)
	if physics.VelocityY != 40 {
		t.Fatalf("airborne jump changed VelocityY to %v", physics.VelocityY)
	}

	ground, ok := tags.Platform.First(e.World)
	if !ok {
		t.Fatal("no platform")
	}
	physics.OnGround = components.Object.Get(ground).Object
	tick(e, ctrl, up)
	if physics.VelocityY != -cfg.Player.JumpSpeed {
		t.Errorf("grounded jump: VelocityY = %v, want %v", physics.VelocityY, -cfg.Player.JumpSpeed)
	}
}

func TestMapperIsNoopWhenOver(t *testing.T) {
	e, ctrl := newWorld(t, &stubRandom{})
	p := player(t, e)

	collectAll(e, ctrl, p)
	bomb := bombs(e)[0]
	ctrl.OnHazardHit(e, p, bomb)

	physics := components.Physics.Get(p)
	physics.VelocityX = 42
	physics.VelocityY = 7
	physics.OnGround = components.Object.Get(bomb).Object

	tick(e, ctrl, heldKeys{cfg.ActionMoveLeft: true, cfg.ActionMoveUp: true})

	if physics.VelocityX != 42 || physics.VelocityY != 7 {
		t.Errorf("velocity changed after game over: (%v, %v)", physics.VelocityX, physics.VelocityY)
	}
	if got := components.Animation.Get(p).CurrentState; got != cfg.AnimTurn {
		t.Errorf("animation = %v after game over, want turn", got)
	}
}
