package catch

import "github.com/vovakirdan/fruit-catch/internal/core"

// Surface is a 2D drawing target in playfield coordinates.
type Surface interface {
	Clear()
	DrawRect(pos, size core.Vec, c core.Color)
	DrawCircle(center core.Vec, radius float64, c core.Color)
}

// ImageDrawer is an optional Surface capability. DrawImage returns false
// when the named image is unknown or not loaded yet, in which case the
// caller draws a fallback shape.
type ImageDrawer interface {
	DrawImage(name string, pos, size core.Vec) bool
}

// Image names looked up through ImageDrawer. Fruit images use the fruit
// type name.
const (
	ImageBasket = "basket"
	ImageHeart  = "heart"
)

// Sprites is the glyph art used on character surfaces.
var Sprites = map[string]core.Sprite{
	ImageBasket: {Rows: []string{
		`\~~~~~~~~/`,
		` \######/ `,
		`  \____/  `,
	}, Color: core.ColorBrown},
	"apple": {Rows: []string{
		` _|_ `,
		`(@@@)`,
		` ‾‾‾ `,
	}, Color: core.ColorRed},
	"orange": {Rows: []string{
		` .-. `,
		`(ooo)`,
		` '-' `,
	}, Color: core.ColorOrange},
	"pear": {Rows: []string{
		`  |  `,
		` (o) `,
		`(ooo)`,
	}, Color: core.ColorGreen},
	"grapes": {Rows: []string{
		` ooo `,
		`  oo `,
		`  o  `,
	}, Color: core.ColorPurple},
	"lemon": {Rows: []string{
		` __  `,
		`<__> `,
	}, Color: core.ColorYellow},
}
