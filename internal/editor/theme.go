package editor

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme shared by the viewport chrome
var (
	ColorBgDark    = rl.NewColor(10, 10, 15, 255)
	ColorBgPanel   = rl.NewColor(18, 18, 24, 245)
	ColorBgElement = rl.NewColor(28, 28, 38, 255)
	ColorBgHover   = rl.NewColor(38, 38, 52, 255)
	ColorBgActive  = rl.NewColor(48, 48, 65, 255)

	ColorAccent      = rl.NewColor(108, 99, 255, 255)
	ColorAccentLight = rl.NewColor(167, 139, 250, 255)

	ColorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	ColorTextSecondary = rl.NewColor(200, 200, 208, 255)
	ColorTextMuted     = rl.NewColor(119, 119, 119, 255)

	ColorSeparator = rl.NewColor(40, 40, 55, 255)

	// Axis label tints
	ColorAxisX = rl.NewColor(232, 72, 85, 255)
	ColorAxisY = rl.NewColor(92, 201, 99, 255)
	ColorAxisZ = rl.NewColor(77, 140, 255, 255)
)

// InitStyle applies the theme to raygui. Call after the window is open.
func InitStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(ColorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(ColorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(ColorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(ColorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(ColorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(ColorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(ColorSeparator))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}
