package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreData is the match score and the text shown for it.
type ScoreData struct {
	Value int
	Text  string
	Pop   *gween.Tween // eases Scale back to 1 after a collection
	Scale float32
}

var Score = donburi.NewComponentType[ScoreData]()
