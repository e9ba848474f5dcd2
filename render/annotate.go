package render

import (
	"fmt"

	"github.com/soocke/prediction-viz-go/domain/prediction"
	"github.com/soocke/prediction-viz-go/ui/theme"
)

// Annotate draws a single prediction onto the canvas. Detection predictions
// become an outlined box, classification predictions set the canvas title.
// Unrecognized prediction types draw nothing.
func Annotate(c *Canvas, p *prediction.Prediction, stroke int) error {
	switch p.Type() {
	case prediction.ObjectDetection:
		box, err := p.Detection()
		if err != nil {
			return fmt.Errorf("annotate detection: %w", err)
		}
		c.DrawRect(box.Bounds(), stroke, theme.AnnotationRGBA())
	case prediction.Classification:
		label, err := p.Classification()
		if err != nil {
			return fmt.Errorf("annotate classification: %w", err)
		}
		c.SetTitle(fmt.Sprintf("Class: %s | Confidence: %s", label.Top, label.Confidence))
	}
	return nil
}
