package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks to hold each frame, minus one
	Loop  bool
}

// PlayerAnimations maps each player clip to its frames on the dude sheet.
// Speed 5 holds a frame for 6 ticks (10 fps at 60 TPS); Speed 2 is 20 fps.
var PlayerAnimations = map[AnimationState]AnimationDef{
	AnimLeft:  {First: 0, Last: 3, Step: 1, Speed: 5, Loop: true},
	AnimRight: {First: 5, Last: 8, Step: 1, Speed: 5, Loop: true},
	AnimTurn:  {First: 4, Last: 4, Step: 1, Speed: 2, Loop: false},
}
