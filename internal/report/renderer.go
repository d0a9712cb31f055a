package report

import (
	"errors"
	"fmt"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) (Renderer, error) {
	for _, r := range []Renderer{&TextRenderer{}, &JSONRenderer{}, &YAMLRenderer{}, &CSVRenderer{}, &XLSXRenderer{}} {
		if r.SupportedFormat() == f {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}
