package components

import (
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State   cfg.MatchStateID
	Paused  bool // physics and relations are frozen
	Batches int  // star batches cleared
	Seed    int64
	Ticks   int
}

var Match = donburi.NewComponentType[MatchData]()

// Running reports whether gameplay logic should still act.
func (m *MatchData) Running() bool {
	return m.State == cfg.MatchRunning
}

// End moves the match to Over. It reports false if the match was already over.
func (m *MatchData) End() bool {
	if m.State == cfg.MatchOver {
		return false
	}
	m.State = cfg.MatchOver
	return true
}
