package render

import (
	"github.com/soocke/prediction-viz-go/domain/prediction"
)

// Blank canvas dimensions for empty groups.
const (
	blankW = 640
	blankH = 480
)

// Render produces the annotated canvas for a single prediction. The path
// reachability check runs before any pixel work.
func Render(l *Loader, p *prediction.Prediction, stroke int) (*Canvas, error) {
	path := p.ImagePath()
	if err := l.Check(path); err != nil {
		return nil, err
	}
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	c := NewCanvas(img)
	if err := Annotate(c, p, stroke); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderGroup overlays every member of the group on the base image, loaded
// once. An empty group renders a blank canvas without touching the
// filesystem or network.
func RenderGroup(l *Loader, g *prediction.Group, stroke int) (*Canvas, error) {
	if g.Len() == 0 {
		return NewBlankCanvas(blankW, blankH), nil
	}
	path := g.BaseImagePath()
	if err := l.Check(path); err != nil {
		return nil, err
	}
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	c := NewCanvas(img)
	for _, p := range g.Predictions() {
		if err := Annotate(c, p, stroke); err != nil {
			return nil, err
		}
	}
	return c, nil
}
