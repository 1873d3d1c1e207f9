package components

import "github.com/yohamta/donburi"

type StarData struct {
	Index   int
	OriginX float64 // centre x the star falls from on every batch
	Active  bool
}

var Star = donburi.NewComponentType[StarData]()
