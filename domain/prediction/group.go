package prediction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DiagnosticKind classifies advisory group inconsistencies.
type DiagnosticKind int

const (
	// DiagMixedType marks a member whose prediction type differs from the
	// group's base type.
	DiagMixedType DiagnosticKind = iota
	// DiagMixedPath marks a member whose image path differs from the group's
	// base image path.
	DiagMixedPath
)

// Diagnostic is an advisory inconsistency noticed while growing a group.
// Diagnostics never reject the member; callers decide whether to log them.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

// Group is an ordered collection of predictions sharing a nominal source
// image. The first member fixes the base image path and prediction type;
// later mismatches are reported but tolerated.
type Group struct {
	predictions   []*Prediction
	baseImagePath string
	baseType      PredictionType
}

// NewGroup builds a group from zero or more predictions. Nil members are
// rejected; the first member sets the base image path and type.
func NewGroup(preds ...*Prediction) (*Group, error) {
	g := &Group{}
	for i, p := range preds {
		if p == nil {
			return nil, &InvalidMemberError{}
		}
		if i == 0 {
			g.baseImagePath = p.ImagePath()
			g.baseType = p.Type()
		}
		g.predictions = append(g.predictions, p)
	}
	return g, nil
}

// Add appends p to the group. A nil member is an error; a member whose type
// or image path disagrees with the base is appended anyway and reported via
// the returned diagnostics. Adding to an empty group adopts the member's
// image path and type as the base.
func (g *Group) Add(p *Prediction) ([]Diagnostic, error) {
	if p == nil {
		return nil, &InvalidMemberError{}
	}
	var diags []Diagnostic
	if g.Len() > 0 {
		if t := p.Type(); t != g.baseType {
			diags = append(diags, Diagnostic{
				Kind: DiagMixedType,
				Message: fmt.Sprintf("prediction type %q differs from the group base type %q",
					t, g.baseType),
			})
		}
		if ip := p.ImagePath(); ip != g.baseImagePath {
			diags = append(diags, Diagnostic{
				Kind: DiagMixedPath,
				Message: fmt.Sprintf("prediction image path %q differs from the group base image path %q",
					ip, g.baseImagePath),
			})
		}
	} else {
		g.baseImagePath = p.ImagePath()
		g.baseType = p.Type()
	}
	g.predictions = append(g.predictions, p)
	return diags, nil
}

// Len returns the number of predictions in the group.
func (g *Group) Len() int {
	return len(g.predictions)
}

// At returns the i-th prediction. Out-of-range indexes panic like a slice.
func (g *Group) At(i int) *Prediction {
	return g.predictions[i]
}

// Predictions returns the members in order. The slice is a copy; the group
// keeps sole ownership of its internal sequence.
func (g *Group) Predictions() []*Prediction {
	out := make([]*Prediction, len(g.predictions))
	copy(out, g.predictions)
	return out
}

// BaseImagePath returns the image path adopted from the first member.
func (g *Group) BaseImagePath() string {
	return g.baseImagePath
}

// BaseType returns the prediction type adopted from the first member.
func (g *Group) BaseType() PredictionType {
	return g.baseType
}

// Save writes the annotated group render to disk.
// TODO: share the disk encoder with Prediction.Save once it exists.
func (g *Group) Save(path string) error {
	return ErrSaveNotImplemented
}

// String concatenates each member's string form separated by blank lines.
func (g *Group) String() string {
	var b strings.Builder
	for _, p := range g.predictions {
		b.WriteString(p.String())
		b.WriteString("\n\n")
	}
	return b.String()
}

// Response is the JSON shape of an inference API reply. Entry schemas are
// opaque beyond the predictions sequence itself.
type Response struct {
	Predictions []Fields `json:"predictions"`
}

// ParseResponse decodes a raw inference API payload.
func ParseResponse(data []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	return &r, nil
}

// FromResponse builds one prediction per response entry, tagged with the
// image path and type, and groups them in response order.
func FromResponse(resp *Response, imagePath string, ptype PredictionType) (*Group, error) {
	preds := make([]*Prediction, 0, len(resp.Predictions))
	for _, fields := range resp.Predictions {
		preds = append(preds, New(fields, imagePath, ptype))
	}
	return NewGroup(preds...)
}
