package components

import (
	"github.com/automoto/starcatch/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal centre; entity positions are sprite centres.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenter moves the body so its centre sits at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	if o.Space != nil {
		o.Update()
	}
}

func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
