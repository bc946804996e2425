package core

import "image/color"

// Color is the foreground color of a screen cell.
// Frontends translate it: the terminal via ANSI codes, the window via RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

type colorInfo struct {
	name string
	ansi string
	rgba color.RGBA
}

var colorTable = [...]colorInfo{
	ColorDefault:      {"default", "", color.RGBA{255, 255, 255, 255}},
	ColorRed:          {"red", "1", color.RGBA{255, 0, 0, 255}},
	ColorYellow:       {"yellow", "3", color.RGBA{255, 255, 0, 255}},
	ColorBlue:         {"blue", "4", color.RGBA{0, 0, 255, 255}},
	ColorWhite:        {"white", "7", color.RGBA{220, 220, 220, 255}},
	ColorBrightRed:    {"bright_red", "9", color.RGBA{255, 80, 80, 255}},
	ColorBrightYellow: {"bright_yellow", "11", color.RGBA{255, 255, 0, 255}},
	ColorBrightBlue:   {"bright_blue", "12", color.RGBA{80, 140, 255, 255}},
	ColorBrightCyan:   {"bright_cyan", "14", color.RGBA{120, 255, 255, 255}},
	ColorBrightWhite:  {"bright_white", "15", color.RGBA{255, 255, 255, 255}},
	ColorGray:         {"gray", "245", color.RGBA{138, 138, 138, 255}},
}

func (c Color) info() colorInfo {
	if int(c) >= len(colorTable) {
		return colorTable[ColorDefault]
	}
	return colorTable[c]
}

// String returns the color name.
func (c Color) String() string { return c.info().name }

// ANSI returns the 256-color palette index as a string, or "" for the terminal default.
func (c Color) ANSI() string { return c.info().ansi }

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA { return c.info().rgba }
