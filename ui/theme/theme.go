package theme

// Centralized palette for the plot window and canvas annotations. Hex
// constants feed Tk widget options; the RGBA accessors feed pixel drawing.

import (
	"fmt"
	"image/color"
)

const (
	ColorBg         = "#f7f9fb" // window background
	ColorSurface    = "#ffffff" // image label backdrop
	ColorBorder     = "#d0d7de"
	ColorAnnotation = "#dc2626" // bounding box outlines
	ColorTitleText  = "#1e293b" // rendered classification titles
	ColorBlank      = "#e2e8f0" // empty-group canvas fill
)

// AnnotationRGBA returns the bounding box outline color.
func AnnotationRGBA() color.RGBA { return mustRGBA(ColorAnnotation) }

// TitleRGBA returns the color used for titles rendered onto the canvas.
func TitleRGBA() color.RGBA { return mustRGBA(ColorTitleText) }

// BlankRGBA returns the fill color for blank canvases.
func BlankRGBA() color.RGBA { return mustRGBA(ColorBlank) }

// mustRGBA parses a #rrggbb string. The palette constants are trusted input;
// a malformed constant yields black rather than an error.
func mustRGBA(hex string) color.RGBA {
	var r, g, b uint8
	_, _ = fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
