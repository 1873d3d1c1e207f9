package systems_test

import (
	"testing"

	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestInputEdges(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	keys := heldKeys{}
	poll := systems.NewUpdateInput(keys)

	keys[cfg.ActionRestart] = true
	poll(e)
	state := systems.GetAction(systems.GetOrCreateInput(e), cfg.ActionRestart)
	if !state.Pressed || !state.JustPressed {
		t.Errorf("first tick held: %+v", state)
	}

	poll(e)
	state = systems.GetAction(systems.GetOrCreateInput(e), cfg.ActionRestart)
	if !state.Pressed || state.JustPressed {
		t.Errorf("second tick held: %+v", state)
	}

	delete(keys, cfg.ActionRestart)
	poll(e)
	state = systems.GetAction(systems.GetOrCreateInput(e), cfg.ActionRestart)
	if state.Pressed || !state.JustReleased {
		t.Errorf("released: %+v", state)
	}
}

func TestInputIsSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a := systems.GetOrCreateInput(e)
	b := systems.GetOrCreateInput(e)
	if a != b {
		t.Error("GetOrCreateInput created a second input entity")
	}
}
