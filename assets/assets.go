package assets

import (
	"fmt"
	"image"

	"github.com/automoto/starcatch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureID names one of the generated textures.
type TextureID int

const (
	TextureNone TextureID = iota
	TextureSky
	TextureGround
	TextureStar
	TextureBomb
	TextureDude
)

func (t TextureID) String() string {
	switch t {
	case TextureSky:
		return "sky"
	case TextureGround:
		return "ground"
	case TextureStar:
		return "star"
	case TextureBomb:
		return "bomb"
	case TextureDude:
		return "dude"
	}
	return "none"
}

type frameKey struct {
	id    TextureID
	index int
}

// TextureLoader draws textures on first use and caches them along with
// their sub-image frames.
type TextureLoader struct {
	cache      map[TextureID]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

func NewTextureLoader() *TextureLoader {
	return &TextureLoader{
		cache:      make(map[TextureID]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

func (l *TextureLoader) MustLoadImage(id TextureID) *ebiten.Image {
	if img, ok := l.cache[id]; ok {
		return img
	}

	var img *ebiten.Image
	switch id {
	case TextureSky:
		img = drawSky(config.World.Width, config.World.Height)
	case TextureGround:
		img = drawGround(int(config.Platforms.Width), int(config.Platforms.Height))
	case TextureStar:
		img = drawStar(int(config.Star.Width), int(config.Star.Height))
	case TextureBomb:
		img = drawBomb(int(config.Bomb.Size))
	case TextureDude:
		img = drawDude(config.Player.FrameWidth, config.Player.FrameHeight, config.Player.FrameCount)
	default:
		panic(fmt.Sprintf("Unknown texture %d", id))
	}

	l.cache[id] = img
	return img
}

// GetFrame returns a cached sub-image for one frame of a horizontal strip.
func (l *TextureLoader) GetFrame(id TextureID, index, frameWidth, frameHeight int) *ebiten.Image {
	key := frameKey{id: id, index: index}
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(id)
	sx := index * frameWidth
	frame := sheet.SubImage(image.Rect(sx, 0, sx+frameWidth, frameHeight)).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	textureLoader = NewTextureLoader()
)

func GetImage(id TextureID) *ebiten.Image {
	return textureLoader.MustLoadImage(id)
}

func GetFrame(id TextureID, index, frameWidth, frameHeight int) *ebiten.Image {
	return textureLoader.GetFrame(id, index, frameWidth, frameHeight)
}

// PreloadAll draws every texture and player frame up front so the first
// rendered tick does not stall.
func PreloadAll() {
	for id := TextureSky; id <= TextureDude; id++ {
		_ = GetImage(id)
	}
	for i := 0; i < config.Player.FrameCount; i++ {
		_ = GetFrame(TextureDude, i, config.Player.FrameWidth, config.Player.FrameHeight)
	}
}

func drawSky(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(config.SkyBlue)
	// Paler band towards the horizon
	band := config.SkyBlue
	for i := 0; i < 6; i++ {
		band.R += 15
		band.G += 12
		band.B += 3
		y := float32(h) * (0.5 + float32(i)*0.08)
		vector.FillRect(img, 0, y, float32(w), float32(h)*0.08, band, false)
	}
	return img
}

func drawGround(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(config.Dirt)
	vector.FillRect(img, 0, 0, float32(w), float32(h)/4, config.Grass, false)
	return img
}

func drawStar(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(min(w, h)) / 2
	vector.FillRect(img, cx-r*0.25, 0, r*0.5, float32(h), config.Gold, true)
	vector.FillRect(img, 0, cy-r*0.25, float32(w), r*0.5, config.Gold, true)
	vector.FillCircle(img, cx, cy, r*0.6, config.Gold, true)
	vector.FillCircle(img, cx-r*0.2, cy-r*0.2, r*0.15, config.White, true)
	return img
}

func drawBomb(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.FillCircle(img, r, r, r, config.Charcoal, true)
	vector.FillCircle(img, r*0.65, r*0.65, r*0.25, config.White, true)
	return img
}

// drawDude draws the player strip: frames 0-3 face left, the middle frame
// faces the camera, the rest face right.
func drawDude(fw, fh, count int) *ebiten.Image {
	img := ebiten.NewImage(fw*count, fh)
	mid := count / 2
	for i := 0; i < count; i++ {
		ox := float32(i * fw)
		w, h := float32(fw), float32(fh)

		facing := float32(0)
		if i < mid {
			facing = -1
		} else if i > mid {
			facing = 1
		}

		// Body and head
		vector.FillRect(img, ox+w*0.25, h*0.35, w*0.5, h*0.4, config.Purple, false)
		vector.FillCircle(img, ox+w/2, h*0.2, w*0.3, config.Purple, true)

		// Eyes follow the facing direction
		eyeX := ox + w/2 + facing*w*0.12
		vector.FillCircle(img, eyeX-w*0.09, h*0.18, w*0.06, config.White, true)
		vector.FillCircle(img, eyeX+w*0.09, h*0.18, w*0.06, config.White, true)

		// Legs alternate through the run cycle
		stride := float32(0)
		if facing != 0 {
			stride = float32((i%mid)%2*2-1) * w * 0.08
		}
		vector.FillRect(img, ox+w*0.3+stride, h*0.75, w*0.15, h*0.25, config.Black, false)
		vector.FillRect(img, ox+w*0.55-stride, h*0.75, w*0.15, h*0.25, config.Black, false)
	}
	return img
}
