package components

import "github.com/yohamta/donburi"

type BombData struct {
	Serial int // 1 for the first bomb of the match
	SpawnX float64
}

var Bomb = donburi.NewComponentType[BombData]()
