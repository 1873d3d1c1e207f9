package animations

// Animation is a frame clock over a contiguous run of sheet indices.
type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame
	Loop       bool    // false holds the last frame once reached

	frameCounter float32
	frame        int
	Finished     bool
}

func (a *Animation) Update() {
	if a.Finished {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
				a.Finished = true
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Finished = false
}

func NewAnimation(first, last, step int, speed float32, loop bool) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Loop:         loop,
		frameCounter: speed,
		frame:        first,
	}
}
