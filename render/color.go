package render

import "github.com/lixenwraith/vi-maze/core"

// RGB and RGBA alias core colors so renderers can extend functionality
type (
	RGB  = core.RGB
	RGBA = core.RGBA
)

// Scene palette
var (
	RGBBlack = core.RGBBlack
	RGBWhite = core.RGBWhite

	ColorSky      = core.MustHex("#87ceeb")
	ColorGround   = core.MustHex("#4a7c44")
	ColorMiniWall = core.MustHex("#444444")
	ColorMiniBack = RGBA{RGB: core.RGBBlack, A: 0.8}
	ColorHUDText  = RGBWhite
	ColorHUDMsg   = core.MustHex("#ffff66")
)
