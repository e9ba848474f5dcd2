package prediction

import (
	"encoding/json"
	"image"
	"math"
	"strconv"
)

// Box is the typed payload of an object-detection prediction. X and Y are the
// center of the bounding box, matching the inference API's coordinate system.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds converts the center coordinates to a top-left anchored rectangle.
func (b Box) Bounds() image.Rectangle {
	x0 := b.X - b.Width/2
	y0 := b.Y - b.Height/2
	return image.Rect(
		int(math.Round(x0)),
		int(math.Round(y0)),
		int(math.Round(x0+b.Width)),
		int(math.Round(y0+b.Height)),
	)
}

// Label is the typed payload of a classification prediction.
type Label struct {
	Top        string
	Confidence string
}

// Detection extracts the bounding box payload. Fields missing from the
// mapping surface here, not at construction time.
func (p *Prediction) Detection() (Box, error) {
	var box Box
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"x", &box.X},
		{"y", &box.Y},
		{"width", &box.Width},
		{"height", &box.Height},
	} {
		v, err := p.Field(f.key)
		if err != nil {
			return Box{}, err
		}
		n, err := toFloat(f.key, v)
		if err != nil {
			return Box{}, err
		}
		*f.dst = n
	}
	return box, nil
}

// Classification extracts the top label and its confidence. Confidence may
// arrive as a JSON string or number; both are normalized to a string.
func (p *Prediction) Classification() (Label, error) {
	top, err := p.Field("top")
	if err != nil {
		return Label{}, err
	}
	ts, ok := top.(string)
	if !ok {
		return Label{}, &FieldTypeError{Key: "top", Value: top}
	}
	conf, err := p.Field("confidence")
	if err != nil {
		return Label{}, err
	}
	cs, err := toConfidence(conf)
	if err != nil {
		return Label{}, err
	}
	return Label{Top: ts, Confidence: cs}, nil
}

func toFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &FieldTypeError{Key: key, Value: v}
		}
		return f, nil
	}
	return 0, &FieldTypeError{Key: key, Value: v}
}

func toConfidence(v any) (string, error) {
	switch c := v.(type) {
	case string:
		return c, nil
	case json.Number:
		return c.String(), nil
	}
	f, err := toFloat("confidence", v)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
