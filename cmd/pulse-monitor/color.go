package main

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorfulHSV converts an HSV pick to a tcell color.
func colorfulHSV(hue, sat float64) tcell.Color {
	c := colorful.Hsv(hue, sat, 1.0)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
