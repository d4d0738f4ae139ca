package window

import (
	"image/color"
	_ "image/png" // PNG decoder for ebitenutil.NewImageFromFile
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruit-catch/internal/core"
)

var background = color.RGBA{0x87, 0xce, 0xeb, 0xff}

// palette maps core colors to the CSS colors of the same name.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:           {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0x80, 0x00, 0xff},
	core.ColorYellow:        {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta:       {0xff, 0x00, 0xff, 0xff},
	core.ColorCyan:          {0x00, 0xff, 0xff, 0xff},
	core.ColorWhite:         {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0xa5, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorBrown:         {0xa5, 0x2a, 0x2a, 0xff},
	core.ColorPurple:        {0x80, 0x00, 0x80, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// imageSurface draws playfield shapes onto an ebiten image. The window
// layout equals the playfield size, so no scaling happens here.
type imageSurface struct {
	dst    *ebiten.Image
	images map[string]*ebiten.Image
}

func (s *imageSurface) Clear() {
	s.dst.Fill(background)
}

func (s *imageSurface) DrawRect(pos, size core.Vec, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), rgba(c), false)
}

func (s *imageSurface) DrawCircle(center core.Vec, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), rgba(c), true)
}

// DrawImage stretches the named image over the box. Unknown names
// report false so the game falls back to shapes.
func (s *imageSurface) DrawImage(name string, pos, size core.Vec) bool {
	img, ok := s.images[name]
	if !ok {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
	return true
}

// loadImages loads <dir>/<name>.png for every name. Missing or broken
// files are skipped and drawn as fallback shapes.
func loadImages(dir string, names []string, logger *log.Logger) map[string]*ebiten.Image {
	images := make(map[string]*ebiten.Image, len(names))
	if dir == "" {
		return images
	}

	for _, name := range names {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			logger.Debug("image not found", "path", path)
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("cannot load image", "path", path, "err", err)
			continue
		}
		images[name] = img
	}
	logger.Info("images loaded", "dir", dir, "count", len(images))
	return images
}
