package prediction

import (
	"encoding/json"
	"fmt"
)

// PredictionType discriminates how a prediction's fields are interpreted.
type PredictionType string

const (
	ObjectDetection PredictionType = "object-detection"
	Classification  PredictionType = "classification"
)

// Fields is the raw field mapping of a single inference result. Keys beyond
// the ones this package knows about are carried through untouched.
type Fields map[string]any

// Prediction wraps one inference result tied to one source image. The field
// mapping always contains "image_path" and "prediction_type"; payload fields
// are only checked when they are actually touched.
type Prediction struct {
	fields Fields
}

// New builds a prediction from an API response entry, injecting the image
// path and prediction type into the field mapping.
func New(fields Fields, imagePath string, ptype PredictionType) *Prediction {
	if fields == nil {
		fields = Fields{}
	}
	fields["image_path"] = imagePath
	fields["prediction_type"] = string(ptype)
	return &Prediction{fields: fields}
}

// JSON returns the underlying field mapping.
func (p *Prediction) JSON() Fields {
	return p.fields
}

// Field returns the value stored under key, or a MissingFieldError.
func (p *Prediction) Field(key string) (any, error) {
	v, ok := p.fields[key]
	if !ok {
		return nil, &MissingFieldError{Key: key}
	}
	return v, nil
}

// ImagePath returns the source image path or URL this prediction refers to.
func (p *Prediction) ImagePath() string {
	s, _ := p.fields["image_path"].(string)
	return s
}

// Type returns the prediction type discriminant.
func (p *Prediction) Type() PredictionType {
	s, _ := p.fields["prediction_type"].(string)
	return PredictionType(s)
}

// String pretty-prints the field mapping as indented JSON.
func (p *Prediction) String() string {
	out, err := json.MarshalIndent(p.fields, "", "  ")
	if err != nil {
		return fmt.Sprintf("prediction: %v", err)
	}
	return string(out)
}

// Save writes the annotated prediction to disk.
// TODO: render the annotation over the source image and encode it to path.
func (p *Prediction) Save(path string) error {
	return ErrSaveNotImplemented
}
