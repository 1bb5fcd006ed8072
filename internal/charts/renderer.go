package charts

import (
	"fmt"
	"strings"
)

const (
	EngineGonum   = "gonum"
	EngineGoChart = "gochart"

	DefaultWidth  = 640
	DefaultHeight = 360
)

// NewRenderer cria o motor de gráficos configurado. Dimensões em pixels.
func NewRenderer(engine string, width, height int) (Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineGonum:
		return &GonumRenderer{width: width, height: height}, nil
	case EngineGoChart:
		return &GoChartRenderer{width: width, height: height}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
