package scenes

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/starcatch/systems"
	"github.com/charmbracelet/log"
)

var (
	// ErrMatchActive is returned by Start while the previous match is still up.
	ErrMatchActive = errors.New("a match is already running; tear it down first")
	// ErrUnknownMatch is returned by Teardown for a match this host did not start.
	ErrUnknownMatch = errors.New("match does not belong to this host")
)

type HostOptions struct {
	// Seed of the first match; each later match adds one. 0 seeds from the clock.
	Seed  int64
	Input systems.InputSource
}

// Host owns at most one match at a time.
type Host struct {
	opts    HostOptions
	current *PlatformerScene
	started int64
}

func NewHost(opts HostOptions) *Host {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Input == nil {
		opts.Input = systems.KeyboardSource{}
	}
	return &Host{opts: opts}
}

// Start builds a new match from an empty world.
func (h *Host) Start() (*PlatformerScene, error) {
	if h.current != nil {
		return nil, ErrMatchActive
	}

	seed := h.opts.Seed + h.started
	scene, err := newPlatformerScene(seed, h.opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}
	h.started++
	h.current = scene

	log.Info("match started", "seed", seed, "match", h.started)
	return scene, nil
}

// Teardown releases every entity of scene. Tearing the same match down
// twice is a no-op.
func (h *Host) Teardown(scene *PlatformerScene) error {
	if scene == nil || scene.closed {
		return nil
	}
	if scene != h.current {
		return ErrUnknownMatch
	}

	score, state := scene.Score(), scene.State()
	scene.close()
	h.current = nil

	log.Info("match torn down", "seed", scene.seed, "score", score, "state", state)
	return nil
}

// Restart tears down the current match, if any, and starts a fresh one.
func (h *Host) Restart() (*PlatformerScene, error) {
	if err := h.Teardown(h.current); err != nil {
		return nil, err
	}
	return h.Start()
}

// Current returns the running match, or nil.
func (h *Host) Current() *PlatformerScene {
	return h.current
}
