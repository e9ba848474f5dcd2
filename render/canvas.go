package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/prediction-viz-go/ui/theme"
)

// Canvas is a drawable surface holding the base image and its annotations.
type Canvas struct {
	img   *image.RGBA
	title string
}

// NewCanvas copies src into a mutable RGBA canvas anchored at the origin.
func NewCanvas(src image.Image) *Canvas {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Canvas{img: dst}
}

// NewBlankCanvas returns a uniformly filled canvas, shown when a group has
// nothing to draw.
func NewBlankCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(theme.BlankRGBA()), image.Point{}, draw.Src)
	return &Canvas{img: dst}
}

// Image returns the composed pixels.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Title returns the current title line, if any.
func (c *Canvas) Title() string {
	return c.title
}

const (
	titleMarginX = 8
	titleMarginY = 16
)

// SetTitle stores the title and renders it near the top-left corner.
func (c *Canvas) SetTitle(s string) {
	c.title = s
	if s == "" {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(theme.TitleRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(titleMarginX, titleMarginY),
	}
	d.DrawString(s)
}

// DrawRect draws an unfilled rectangle outline, clamped to the canvas bounds.
func (c *Canvas) DrawRect(r image.Rectangle, stroke int, col color.RGBA) {
	if stroke < 1 {
		stroke = 1
	}
	b := c.img.Bounds()
	edges := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+stroke),
		image.Rect(r.Min.X, r.Max.Y-stroke, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+stroke, r.Max.Y),
		image.Rect(r.Max.X-stroke, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(b)
		if e.Empty() {
			continue
		}
		draw.Draw(c.img, e, image.NewUniform(col), image.Point{}, draw.Src)
	}
}
