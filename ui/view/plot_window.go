package view

import (
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/prediction-viz-go/config"
	"github.com/soocke/prediction-viz-go/render"
	"github.com/soocke/prediction-viz-go/ui/images"
	"github.com/soocke/prediction-viz-go/ui/theme"
)

// PlotWindow shows rendered canvases in a blocking Tk window. One window per
// process; plt-style fire-and-forget display.
type PlotWindow struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewPlotWindow returns a window bound to the given config and logger.
func NewPlotWindow(cfg *config.Config, logger *slog.Logger) *PlotWindow {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &PlotWindow{cfg: cfg, logger: logger}
}

// Show displays the canvas and blocks until the window is closed.
func (w *PlotWindow) Show(c *render.Canvas) error {
	scaled := images.FitPreview(c.Image(), w.cfg.MaxPreviewW, w.cfg.MaxPreviewH)
	pngBytes := images.EncodePNG(scaled)

	App.WmTitle("Prediction Plot")
	App.Configure(Background(theme.ColorBg))
	WmProtocol(App, "WM_DELETE_WINDOW", func() { Destroy(App) })

	label := Label(Image(NewPhoto(Data(pngBytes))), Borderwidth(1), Relief("sunken"))
	Pack(label, Padx("1m"), Pady("1m"))
	if title := c.Title(); title != "" {
		Pack(Label(Txt(title), Background(theme.ColorBg)), Padx("1m"), Pady("0.4m"))
	}
	Pack(Button(Txt("Close"), Command(func() { Destroy(App) })), Pady("1m"))

	if w.logger != nil {
		w.logger.Info("plot window open", slog.String("title", c.Title()))
	}
	App.Wait()
	return nil
}
