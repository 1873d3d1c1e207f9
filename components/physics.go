package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is a dynamic body. Velocities are in px/s.
type PhysicsData struct {
	VelocityX          float64
	VelocityY          float64
	BounceX            float64
	BounceY            float64
	AllowGravity       bool
	CollideWorldBounds bool
	Enabled            bool           // false takes the body out of the simulation
	OnGround           *resolv.Object // body this one rested on after the last step
}

// Grounded reports whether the body is resting on another body. The world
// floor does not count.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
