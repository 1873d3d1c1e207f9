package components

import (
	"image/color"

	"github.com/automoto/starcatch/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Texture assets.TextureID
	Visible bool
	ScaleX  float64
	ScaleY  float64
	Tinted  bool
	Tint    color.RGBA
}

// SetTint multiplies the sprite by c when drawn.
func (s *SpriteData) SetTint(c color.RGBA) {
	s.Tint = c
	s.Tinted = true
}

var Sprite = donburi.NewComponentType[SpriteData]()
