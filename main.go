package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/soocke/prediction-viz-go/assets"
	"github.com/soocke/prediction-viz-go/config"
	"github.com/soocke/prediction-viz-go/debug"
	"github.com/soocke/prediction-viz-go/domain/prediction"
	"github.com/soocke/prediction-viz-go/plot"
	"github.com/soocke/prediction-viz-go/render"
	"github.com/soocke/prediction-viz-go/ui/view"
)

func main() {
	var (
		responsePath = flag.String("response", "", "inference response JSON file")
		imagePath    = flag.String("image", "", "source image path or URL")
		predType     = flag.String("type", string(prediction.ObjectDetection),
			"prediction type (object-detection or classification)")
		stroke     = flag.Int("stroke", 0, "bounding box outline width (0 uses the config value)")
		configPath = flag.String("config", "", "config file path (defaults to the XDG config dir)")
		printGroup = flag.Bool("print", false, "print the prediction group to stdout before plotting")
		demo       = flag.Bool("demo", false, "use the embedded sample response")
	)
	flag.Parse()

	if *configPath == "" {
		*configPath = filepath.Join(xdg.ConfigHome, "prediction-viz", "config.json")
	}
	cfg, cfgErr := config.Load(*configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults",
			slog.String("path", *configPath),
			slog.String("error", cfgErr.Error()))
	}
	if cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, logger)
	}

	if *imagePath == "" {
		logger.Error("missing -image")
		os.Exit(2)
	}

	var (
		data []byte
		err  error
	)
	switch {
	case *demo:
		data = assets.SampleResponseJSON
	case *responsePath != "":
		data, err = os.ReadFile(*responsePath)
		if err != nil {
			logger.Error("read response file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		logger.Error("missing -response (or use -demo)")
		os.Exit(2)
	}

	resp, err := prediction.ParseResponse(data)
	if err != nil {
		logger.Error("parse response", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Grow the group member by member so advisory diagnostics surface in the
	// log instead of vanishing.
	group, err := prediction.NewGroup()
	if err != nil {
		logger.Error("create group", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, fields := range resp.Predictions {
		diags, err := group.Add(prediction.New(fields, *imagePath, prediction.PredictionType(*predType)))
		if err != nil {
			logger.Error("add prediction", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, d := range diags {
			logger.Warn("prediction group inconsistency", slog.String("detail", d.Message))
		}
	}
	logger.Info("loaded predictions",
		slog.Int("count", group.Len()),
		slog.String("image_path", *imagePath),
		slog.String("type", *predType))

	if *printGroup {
		fmt.Print(group)
	}

	if *stroke <= 0 {
		*stroke = cfg.Stroke
	}

	err = plot.Group(group, plot.Options{
		Stroke:  *stroke,
		Loader:  render.NewLoader(cfg.HTTPTimeout()),
		Display: view.NewPlotWindow(cfg, logger),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("plot failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
