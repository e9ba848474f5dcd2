package plot

import (
	"errors"
	"io"
	"log/slog"

	"github.com/soocke/prediction-viz-go/domain/prediction"
	"github.com/soocke/prediction-viz-go/render"
)

// Displayer shows a rendered canvas and blocks until it is dismissed.
// Production wiring uses ui/view.PlotWindow; tests substitute a recorder.
type Displayer interface {
	Show(*render.Canvas) error
}

// ErrNoDisplay is returned when Options carries no Displayer.
var ErrNoDisplay = errors.New("plot: no display configured")

// Options control rendering and display for the plot operations. Zero values
// select the defaults: stroke 1, a loader with the default timeout, a
// discarded logger. Display has no default and must be set.
type Options struct {
	Stroke  int
	Loader  *render.Loader
	Display Displayer
	Logger  *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Stroke <= 0 {
		o.Stroke = 1
	}
	if o.Loader == nil {
		o.Loader = render.NewLoader(0)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Prediction renders p over its source image and displays it synchronously.
// The image path must resolve locally or over HTTP; the error surfaces before
// any rendering happens.
func Prediction(p *prediction.Prediction, opts Options) error {
	opts = opts.withDefaults()
	if opts.Display == nil {
		return ErrNoDisplay
	}
	c, err := render.Render(opts.Loader, p, opts.Stroke)
	if err != nil {
		return err
	}
	opts.Logger.Debug("plot prediction",
		slog.String("image_path", p.ImagePath()),
		slog.String("type", string(p.Type())))
	return opts.Display.Show(c)
}

// Group overlays every member on the group's base image and displays the
// result. Empty groups display a blank canvas.
func Group(g *prediction.Group, opts Options) error {
	opts = opts.withDefaults()
	if opts.Display == nil {
		return ErrNoDisplay
	}
	c, err := render.RenderGroup(opts.Loader, g, opts.Stroke)
	if err != nil {
		return err
	}
	opts.Logger.Debug("plot group",
		slog.String("image_path", g.BaseImagePath()),
		slog.Int("predictions", g.Len()))
	return opts.Display.Show(c)
}
