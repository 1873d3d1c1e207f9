package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Hit bool // touched a bomb
}

var Player = donburi.NewComponentType[PlayerData]()
