package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/prediction-viz-go/ui/theme"
)

var white = color.RGBA{255, 255, 255, 255}

func whiteCanvas(w, h int) *Canvas {
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, white)
		}
	}
	return NewCanvas(src)
}

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return c.Image().(*image.RGBA).RGBAAt(x, y)
}

func TestDrawRect_Outline(t *testing.T) {
	c := whiteCanvas(20, 20)
	red := theme.AnnotationRGBA()
	c.DrawRect(image.Rect(8, 7, 12, 13), 1, red)

	for _, pt := range []image.Point{{8, 7}, {11, 7}, {8, 12}, {11, 12}, {8, 10}, {11, 10}} {
		if got := rgbaAt(c, pt.X, pt.Y); got != red {
			t.Fatalf("edge pixel %v = %v, want %v", pt, got, red)
		}
	}
	if got := rgbaAt(c, 10, 10); got != white {
		t.Fatalf("interior pixel was filled: %v", got)
	}
	if got := rgbaAt(c, 5, 5); got != white {
		t.Fatalf("pixel outside the box changed: %v", got)
	}
}

func TestDrawRect_ClampsToBounds(t *testing.T) {
	c := whiteCanvas(10, 10)
	red := theme.AnnotationRGBA()
	c.DrawRect(image.Rect(-5, -5, 15, 15), 2, red)
	if got := rgbaAt(c, 0, 0); got != red {
		t.Fatalf("clamped corner = %v, want %v", got, red)
	}
	if got := rgbaAt(c, 5, 5); got != white {
		t.Fatalf("interior changed after clamped draw: %v", got)
	}
}

func TestNewBlankCanvas(t *testing.T) {
	c := NewBlankCanvas(640, 480)
	if b := c.Image().Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Fatalf("bounds = %v", b)
	}
	if got := rgbaAt(c, 0, 0); got != theme.BlankRGBA() {
		t.Fatalf("fill = %v, want %v", got, theme.BlankRGBA())
	}
	// Degenerate sizes are clamped, not rejected.
	if b := NewBlankCanvas(0, -3).Image().Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("clamped bounds = %v", b)
	}
}

func TestSetTitle_StoresAndDraws(t *testing.T) {
	c := whiteCanvas(200, 40)
	c.SetTitle("Class: cat | Confidence: 0.9")
	if c.Title() != "Class: cat | Confidence: 0.9" {
		t.Fatalf("title = %q", c.Title())
	}
	changed := 0
	for y := 5; y < 20; y++ {
		for x := 0; x < 200; x++ {
			if rgbaAt(c, x, y) != white {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Fatalf("title left no pixels on the canvas")
	}
}

func TestNewCanvas_NormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 30, 20))
	c := NewCanvas(src)
	if b := c.Image().Bounds(); b.Min != (image.Point{}) || b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds = %v", b)
	}
}
