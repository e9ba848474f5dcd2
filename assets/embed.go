package assets

import (
	_ "embed"
	"fmt"

	"github.com/soocke/prediction-viz-go/domain/prediction"
)

// SampleResponseJSON contains a small object-detection inference response
// used by demo mode.
//
//go:embed sample_response.json
var SampleResponseJSON []byte

// SampleResponse decodes the embedded response.
func SampleResponse() (*prediction.Response, error) {
	if len(SampleResponseJSON) == 0 {
		return nil, fmt.Errorf("embedded sample_response.json is empty")
	}
	return prediction.ParseResponse(SampleResponseJSON)
}
